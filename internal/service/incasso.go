package service

import (
	"context"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"
)

// incassoArticleName is the expense article every cash pickup books its
// paired operation under. Created on first use.
const incassoArticleName = "Incasso"

type incassoService struct {
	incassoRepo repository.IncassoRepository
	articleRepo repository.ArticleRepository
	ledgerRepo  repository.LedgerRepository
}

func NewIncassoService(
	incassoRepo repository.IncassoRepository,
	articleRepo repository.ArticleRepository,
	ledgerRepo repository.LedgerRepository,
) IncassoService {
	return &incassoService{incassoRepo: incassoRepo, articleRepo: articleRepo, ledgerRepo: ledgerRepo}
}

func (s *incassoService) Create(ctx context.Context, in IncassoInput) (*domain.Incasso, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseAccount(string(in.Method)); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.EnsureArticle(ctx, domain.KindExpense, incassoArticleName)
	if err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	reg, err := tx.LockRegister(ctx, in.HotelID)
	if err != nil {
		return nil, err
	}
	if available := reg.Balance(in.Method); available.LessThan(in.Amount) {
		return nil, &domain.InsufficientFundsError{
			Account:   in.Method,
			Requested: in.Amount,
			Available: available,
		}
	}

	incasso := &domain.Incasso{
		HotelID:    in.HotelID,
		Amount:     in.Amount,
		HappenedAt: in.HappenedAt,
		Method:     in.Method,
		Comment:    in.Comment,
		CreatedBy:  in.ActorID,
	}
	if err := tx.InsertIncasso(ctx, incasso); err != nil {
		return nil, err
	}

	// The pickup shows up in expense reporting through a paired operation.
	// source marks it so aggregates can keep pickups apart from real costs.
	op := &domain.Operation{
		HotelID:      in.HotelID,
		ArticleID:    article.ID,
		ArticleKind:  article.Kind,
		ArticleName:  article.Name,
		Amount:       in.Amount,
		HappenedAt:   in.HappenedAt,
		Method:       in.Method,
		Counterparty: "accounting",
		Comment:      in.Comment,
		Source:       domain.SourceIncasso,
		CreatedBy:    in.ActorID,
	}
	if err := tx.InsertOperation(ctx, op); err != nil {
		return nil, err
	}

	movement := &domain.Movement{
		Direction:   domain.DirectionOut,
		Account:     in.Method,
		Amount:      in.Amount,
		HappenedAt:  in.HappenedAt,
		Comment:     in.Comment,
		OperationID: &op.ID,
		IncassoID:   &incasso.ID,
		CreatedBy:   in.ActorID,
	}
	if _, err := postMovement(ctx, tx, reg, movement); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("incasso posted",
		"hotel_id", in.HotelID,
		"incasso_id", incasso.ID,
		"method", in.Method,
		"amount", in.Amount.StringFixed(2))
	return incasso, nil
}

func (s *incassoService) Get(ctx context.Context, id int64) (*domain.Incasso, error) {
	return s.incassoRepo.GetByID(ctx, id)
}

func (s *incassoService) List(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Incasso, int32, error) {
	return s.incassoRepo.ListByHotel(ctx, hotelID, page, pageSize)
}
