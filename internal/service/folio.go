package service

import (
	"context"
	"fmt"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

// folioPaymentSource tags the income operation a folio payment produces.
const folioPaymentSource = "company_folio"

type folioService struct {
	folioRepo   repository.FolioRepository
	articleRepo repository.ArticleRepository
	ledgerRepo  repository.LedgerRepository
}

func NewFolioService(
	folioRepo repository.FolioRepository,
	articleRepo repository.ArticleRepository,
	ledgerRepo repository.LedgerRepository,
) FolioService {
	return &folioService{folioRepo: folioRepo, articleRepo: articleRepo, ledgerRepo: ledgerRepo}
}

// addFolioItem appends one item and recomputes the folio's closed flag from
// the new balance: closed at zero or below, reopened above zero. Runs inside
// the caller's transaction.
func addFolioItem(ctx context.Context, tx repository.LedgerTx, folio *domain.Folio, item *domain.FolioItem) error {
	if err := tx.InsertFolioItem(ctx, item); err != nil {
		return err
	}
	balance, err := tx.FolioBalance(ctx, folio.ID)
	if err != nil {
		return err
	}
	switch {
	case balance.Sign() <= 0 && !folio.IsClosed:
		now := time.Now().UTC()
		if err := tx.SetFolioClosed(ctx, folio.ID, true, &now); err != nil {
			return err
		}
		folio.IsClosed = true
		folio.ClosedAt = &now
	case balance.Sign() > 0 && folio.IsClosed:
		if err := tx.SetFolioClosed(ctx, folio.ID, false, nil); err != nil {
			return err
		}
		folio.IsClosed = false
		folio.ClosedAt = nil
	}
	return nil
}

func (s *folioService) AddPayment(ctx context.Context, in FolioPaymentInput) (*domain.FolioItem, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseAccount(string(in.Method)); err != nil {
		return nil, err
	}

	company, err := s.folioRepo.GetCompany(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	var article *domain.Article
	if in.ArticleID != 0 {
		article, err = s.articleRepo.GetByID(ctx, in.ArticleID)
		if err != nil || !article.IsActive {
			return nil, domain.ErrArticleNotUsable
		}
		if article.Kind != domain.KindIncome {
			return nil, domain.ErrArticleNotUsable
		}
	} else {
		article, err = s.articleRepo.FirstActiveIncome(ctx)
		if err != nil {
			return nil, err
		}
	}

	// Payments settle an existing balance; a company with no folio at this
	// hotel has nothing to pay against.
	if _, err := s.folioRepo.GetByHotelCompany(ctx, in.HotelID, in.CompanyID); err != nil {
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
	folio, err := tx.GetOrCreateFolio(ctx, in.HotelID, in.CompanyID)
	if err != nil {
		return nil, err
	}

	op := &domain.Operation{
		HotelID:      in.HotelID,
		ArticleID:    article.ID,
		ArticleKind:  article.Kind,
		ArticleName:  article.Name,
		Amount:       in.Amount,
		HappenedAt:   in.HappenedAt,
		Method:       in.Method,
		Counterparty: company.Name,
		Comment:      in.Comment,
		Source:       folioPaymentSource,
		CreatedBy:    in.ActorID,
	}
	if err := tx.InsertOperation(ctx, op); err != nil {
		return nil, err
	}

	movement := &domain.Movement{
		Direction:   domain.DirectionIn,
		Account:     in.Method,
		Amount:      in.Amount,
		HappenedAt:  in.HappenedAt,
		Comment:     in.Comment,
		OperationID: &op.ID,
		CreatedBy:   in.ActorID,
	}
	if _, err := postMovement(ctx, tx, reg, movement); err != nil {
		return nil, err
	}

	item := &domain.FolioItem{
		FolioID:      folio.ID,
		ItemType:     domain.FolioItemPayment,
		HappenedAt:   in.HappenedAt,
		Description:  fmt.Sprintf("Payment from %s", company.Name),
		Amount:       in.Amount,
		SignedAmount: domain.SignFolioAmount(domain.FolioItemPayment, in.Amount),
		OperationID:  &op.ID,
		MovementID:   &movement.ID,
		CreatedBy:    in.ActorID,
	}
	if err := addFolioItem(ctx, tx, folio, item); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("folio payment posted",
		"hotel_id", in.HotelID,
		"folio_id", folio.ID,
		"company", company.Name,
		"method", in.Method,
		"amount", in.Amount.StringFixed(2),
		"closed", folio.IsClosed)
	return item, nil
}

func (s *folioService) GetFolio(ctx context.Context, folioID int64) (*domain.Folio, []domain.FolioItem, decimal.Decimal, error) {
	folio, err := s.folioRepo.GetByID(ctx, folioID)
	if err != nil {
		return nil, nil, decimal.Zero, err
	}
	items, err := s.folioRepo.ListItems(ctx, folioID)
	if err != nil {
		return nil, nil, decimal.Zero, err
	}
	balance, err := s.folioRepo.Balance(ctx, folioID)
	if err != nil {
		return nil, nil, decimal.Zero, err
	}
	return folio, items, balance, nil
}

func (s *folioService) ListFolios(ctx context.Context, hotelID int64, openOnly bool) ([]domain.Folio, error) {
	return s.folioRepo.ListByHotel(ctx, hotelID, openOnly)
}
