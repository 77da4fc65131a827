package service

import (
	"context"
	"fmt"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"
)

type stayService struct {
	stayRepo    repository.StayRepository
	folioRepo   repository.FolioRepository
	articleRepo repository.ArticleRepository
	ledgerRepo  repository.LedgerRepository
	opRepo      repository.OperationRepository
}

func NewStayService(
	stayRepo repository.StayRepository,
	folioRepo repository.FolioRepository,
	articleRepo repository.ArticleRepository,
	ledgerRepo repository.LedgerRepository,
	opRepo repository.OperationRepository,
) StayService {
	return &stayService{
		stayRepo:    stayRepo,
		folioRepo:   folioRepo,
		articleRepo: articleRepo,
		ledgerRepo:  ledgerRepo,
		opRepo:      opRepo,
	}
}

// staySource tags the settlement operation a check-in produces, so it can be
// traced back to the stay from reporting.
func staySource(stayID int64) string {
	return fmt.Sprintf("pms:stay:%d", stayID)
}

func (s *stayService) CheckIn(ctx context.Context, in CheckInInput) (*domain.Stay, error) {
	if in.TotalToPay.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if in.RoomLabel == "" {
		return nil, fmt.Errorf("room label is required")
	}

	// A corporate stay defers to the company folio unless the company pays
	// at the desk.
	deferToFolio := false
	var company *domain.Company
	if in.StayType == domain.StayTypeCorporate {
		if in.CompanyID == nil {
			return nil, domain.ErrCompanyRequired
		}
		var err error
		company, err = s.folioRepo.GetCompany(ctx, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		deferToFolio = company.PayTerms == domain.PayTermsInvoice
	}

	settleNow := in.TotalToPay.IsPositive() && !deferToFolio
	var article *domain.Article
	if settleNow {
		if _, err := domain.ParseAccount(string(in.Method)); err != nil {
			return nil, err
		}
		var err error
		article, err = s.articleRepo.EnsureStayIncomeArticle(ctx)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stay := &domain.Stay{
		HotelID:    in.HotelID,
		RoomLabel:  in.RoomLabel,
		GuestName:  in.GuestName,
		CompanyID:  in.CompanyID,
		StayType:   in.StayType,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		TotalToPay: in.TotalToPay,
		Status:     domain.StayStatusIn,
		CreatedBy:  in.ActorID,
	}
	if err := tx.InsertStay(ctx, stay); err != nil {
		return nil, err
	}

	switch {
	case settleNow:
		reg, err := tx.LockRegister(ctx, in.HotelID)
		if err != nil {
			return nil, err
		}
		op := &domain.Operation{
			HotelID:     in.HotelID,
			ArticleID:   article.ID,
			ArticleKind: article.Kind,
			ArticleName: article.Name,
			Amount:      in.TotalToPay,
			HappenedAt:  in.CheckIn,
			Method:      in.Method,
			Comment:     fmt.Sprintf("Room %s stay", in.RoomLabel),
			Source:      staySource(stay.ID),
			CreatedBy:   in.ActorID,
		}
		op.Counterparty = in.GuestName
		if company != nil {
			op.Counterparty = company.Name
		}
		if err := tx.InsertOperation(ctx, op); err != nil {
			return nil, err
		}
		movement := &domain.Movement{
			Direction:   domain.DirectionIn,
			Account:     in.Method,
			Amount:      in.TotalToPay,
			HappenedAt:  in.CheckIn,
			Comment:     op.Comment,
			OperationID: &op.ID,
			CreatedBy:   in.ActorID,
		}
		if _, err := postMovement(ctx, tx, reg, movement); err != nil {
			return nil, err
		}
		if err := tx.UpdateStaySettlement(ctx, stay.ID, &op.ID, &movement.ID); err != nil {
			return nil, err
		}
		stay.OperationID = &op.ID
		stay.MovementID = &movement.ID

	case deferToFolio && in.TotalToPay.IsPositive():
		folio, err := tx.GetOrCreateFolio(ctx, in.HotelID, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		item := &domain.FolioItem{
			FolioID:      folio.ID,
			ItemType:     domain.FolioItemCharge,
			HappenedAt:   in.CheckIn,
			Description:  fmt.Sprintf("Room %s, %s", in.RoomLabel, in.GuestName),
			Amount:       in.TotalToPay,
			SignedAmount: domain.SignFolioAmount(domain.FolioItemCharge, in.TotalToPay),
			StayID:       &stay.ID,
			CreatedBy:    in.ActorID,
		}
		if err := addFolioItem(ctx, tx, folio, item); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("stay checked in",
		"hotel_id", in.HotelID,
		"stay_id", stay.ID,
		"room", in.RoomLabel,
		"type", in.StayType,
		"amount", in.TotalToPay.StringFixed(2))
	return stay, nil
}

func (s *stayService) CheckOut(ctx context.Context, stayID, actorID int64) (*domain.Stay, error) {
	stay, err := s.stayRepo.GetByID(ctx, stayID)
	if err != nil {
		return nil, err
	}
	if stay.Status != domain.StayStatusIn {
		return nil, domain.ErrStayNotSettleable
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := tx.UpdateStayStatus(ctx, stayID, domain.StayStatusOut); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stay.Status = domain.StayStatusOut
	logger.Info("stay checked out", "stay_id", stayID, "by", actorID)
	return stay, nil
}

func (s *stayService) Cancel(ctx context.Context, stayID, actorID int64, markNoShow bool) (*domain.Stay, error) {
	stay, err := s.stayRepo.GetByID(ctx, stayID)
	if err != nil {
		return nil, err
	}
	switch stay.Status {
	case domain.StayStatusOut, domain.StayStatusCanceled, domain.StayStatusNoShow:
		return nil, domain.ErrStayNotSettleable
	}

	status := domain.StayStatusCanceled
	if markNoShow {
		status = domain.StayStatusNoShow
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	if err := tx.UpdateStayStatus(ctx, stayID, status); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	// The settlement operation, if any, is voided as an annotation. Its
	// movement stays on the ledger until someone posts a refund explicitly.
	if stay.OperationID != nil {
		reason := fmt.Sprintf("stay %d canceled", stayID)
		if err := s.opRepo.MarkVoided(ctx, *stay.OperationID, actorID, reason, time.Now().UTC()); err != nil {
			logger.Warn("could not void settlement operation",
				"stay_id", stayID, "operation_id", *stay.OperationID, "error", err)
		}
	}

	stay.Status = status
	logger.Info("stay canceled", "stay_id", stayID, "status", status, "by", actorID)
	return stay, nil
}

func (s *stayService) Get(ctx context.Context, id int64) (*domain.Stay, error) {
	return s.stayRepo.GetByID(ctx, id)
}

func (s *stayService) List(ctx context.Context, hotelID int64, status domain.StayStatus, page, pageSize int32) ([]domain.Stay, int32, error) {
	return s.stayRepo.ListByHotel(ctx, hotelID, status, page, pageSize)
}
