package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"
)

type operationService struct {
	opRepo      repository.OperationRepository
	articleRepo repository.ArticleRepository
	ledgerRepo  repository.LedgerRepository
}

func NewOperationService(
	opRepo repository.OperationRepository,
	articleRepo repository.ArticleRepository,
	ledgerRepo repository.LedgerRepository,
) OperationService {
	return &operationService{opRepo: opRepo, articleRepo: articleRepo, ledgerRepo: ledgerRepo}
}

func (s *operationService) Record(ctx context.Context, in RecordOperationInput) (*domain.Operation, *domain.Movement, error) {
	if !in.Amount.IsPositive() {
		return nil, nil, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseAccount(string(in.Method)); err != nil {
		return nil, nil, err
	}

	article, err := s.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, nil, domain.ErrArticleNotUsable
	}
	if !article.IsActive {
		return nil, nil, domain.ErrArticleNotUsable
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	reg, err := tx.LockRegister(ctx, in.HotelID)
	if err != nil {
		return nil, nil, err
	}

	op := &domain.Operation{
		HotelID:      in.HotelID,
		ArticleID:    article.ID,
		ArticleKind:  article.Kind,
		ArticleName:  article.Name,
		Amount:       in.Amount,
		HappenedAt:   in.HappenedAt,
		Method:       in.Method,
		Counterparty: in.Counterparty,
		Comment:      in.Comment,
		CreatedBy:    in.ActorID,
	}
	if err := tx.InsertOperation(ctx, op); err != nil {
		return nil, nil, err
	}

	// A bookkeeping-only entry records the event without touching the cash
	// ledger, e.g. an externally settled amount noted for reporting.
	var movement *domain.Movement
	if !in.BookkeepingOnly {
		movement = &domain.Movement{
			Direction:   article.MovementDirection(),
			Account:     in.Method,
			Amount:      in.Amount,
			HappenedAt:  in.HappenedAt,
			Comment:     in.Comment,
			OperationID: &op.ID,
			CreatedBy:   in.ActorID,
		}
		if _, err := postMovement(ctx, tx, reg, movement); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	logger.Info("operation recorded",
		"hotel_id", in.HotelID,
		"operation_id", op.ID,
		"article", article.Name,
		"kind", article.Kind,
		"method", in.Method,
		"amount", in.Amount.StringFixed(2))
	return op, movement, nil
}

func (s *operationService) Void(ctx context.Context, operationID, actorID int64, reason string) (*domain.Operation, error) {
	op, err := s.opRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op.IsVoided {
		return nil, domain.ErrOperationVoided
	}

	// Annotation only. The linked movement stays in the log and the balances
	// keep its effect; a correcting entry is a separate, deliberate step.
	if err := s.opRepo.MarkVoided(ctx, operationID, actorID, reason, time.Now().UTC()); err != nil {
		return nil, err
	}

	logger.Info("operation voided",
		"operation_id", operationID, "voided_by", actorID, "reason", reason)
	return s.opRepo.GetByID(ctx, operationID)
}

func (s *operationService) Get(ctx context.Context, id int64) (*domain.Operation, *domain.Movement, error) {
	op, err := s.opRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	direction := domain.DirectionOut
	if op.ArticleKind == domain.KindIncome {
		direction = domain.DirectionIn
	}
	movement, err := s.ledgerRepo.GetMovementByOperation(ctx, op.ID, op.Method, direction)
	if err != nil {
		// Bookkeeping-only entries have no movement.
		if errors.Is(err, sql.ErrNoRows) {
			return op, nil, nil
		}
		return nil, nil, err
	}
	return op, movement, nil
}

func (s *operationService) List(ctx context.Context, f repository.OperationFilter) ([]domain.Operation, int32, error) {
	return s.opRepo.List(ctx, f)
}

func (s *operationService) ListArticles(ctx context.Context, kind domain.Kind) ([]domain.Article, error) {
	return s.articleRepo.ListActive(ctx, kind)
}
