package service

import (
	"context"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository"
)

type ledgerService struct {
	ledgerRepo   repository.LedgerRepository
	transferRepo repository.TransferRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository, transferRepo repository.TransferRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo, transferRepo: transferRepo}
}

// postMovement applies one movement inside an open ledger transaction: it
// checks funds against the locked register, appends the movement row and
// writes the new balance. The in-memory register is updated too, so several
// postings can stack within one transaction.
//
// When the movement is tied to an operation and an identical posting already
// exists, nothing is written and applied=false is returned.
func postMovement(ctx context.Context, tx repository.LedgerTx, reg *domain.CashRegister, m *domain.Movement) (applied bool, err error) {
	if !m.Amount.IsPositive() {
		return false, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseAccount(string(m.Account)); err != nil {
		return false, err
	}
	if _, err := domain.ParseDirection(string(m.Direction)); err != nil {
		return false, err
	}

	if m.OperationID != nil {
		exists, err := tx.MovementExists(ctx, *m.OperationID, m.Account, m.Direction)
		if err != nil {
			return false, err
		}
		if exists {
			return false, nil
		}
	}

	current := reg.Balance(m.Account)
	var next = current.Add(m.Amount)
	if m.Direction == domain.DirectionOut {
		if current.LessThan(m.Amount) {
			return false, &domain.InsufficientFundsError{
				Account:   m.Account,
				Requested: m.Amount,
				Available: current,
			}
		}
		next = current.Sub(m.Amount)
	}

	m.RegisterID = reg.ID
	m.HotelID = reg.HotelID
	if err := tx.InsertMovement(ctx, m); err != nil {
		return false, err
	}
	if err := tx.SetBalance(ctx, reg.ID, m.Account, next); err != nil {
		return false, err
	}
	reg.SetBalance(m.Account, next)
	return true, nil
}

// ApplyMovement posts a single standalone movement. This is the manual
// correction tool: voiding an operation keeps its balance effect, and a
// compensating movement posted here is how that effect gets undone.
func (s *ledgerService) ApplyMovement(ctx context.Context, in MovementInput) (*domain.Movement, error) {
	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	reg, err := tx.LockRegister(ctx, in.HotelID)
	if err != nil {
		return nil, err
	}

	movement := &domain.Movement{
		Direction:  in.Direction,
		Account:    in.Account,
		Amount:     in.Amount,
		HappenedAt: in.HappenedAt,
		Comment:    in.Comment,
		CreatedBy:  in.ActorID,
	}
	if _, err := postMovement(ctx, tx, reg, movement); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("movement posted",
		"hotel_id", in.HotelID,
		"movement_id", movement.ID,
		"account", in.Account,
		"direction", in.Direction,
		"amount", in.Amount.StringFixed(2))
	return movement, nil
}

func (s *ledgerService) GetSnapshot(ctx context.Context, hotelID int64) (*domain.RegisterSnapshot, error) {
	reg, err := s.ledgerRepo.GetOrCreateRegister(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return reg.Snapshot(), nil
}

func (s *ledgerService) ListMovements(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Movement, int32, error) {
	return s.ledgerRepo.ListMovements(ctx, hotelID, page, pageSize)
}

func (s *ledgerService) Transfer(ctx context.Context, in TransferInput) (*domain.Transfer, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseAccount(string(in.FromAccount)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAccount(string(in.ToAccount)); err != nil {
		return nil, err
	}
	if in.FromAccount == in.ToAccount {
		return nil, domain.ErrSameAccountTransfer
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

	// Fail fast before writing anything.
	if available := reg.Balance(in.FromAccount); available.LessThan(in.Amount) {
		return nil, &domain.InsufficientFundsError{
			Account:   in.FromAccount,
			Requested: in.Amount,
			Available: available,
		}
	}

	transfer := &domain.Transfer{
		HotelID:     in.HotelID,
		RegisterID:  reg.ID,
		FromAccount: in.FromAccount,
		ToAccount:   in.ToAccount,
		Amount:      in.Amount,
		HappenedAt:  in.HappenedAt,
		Comment:     in.Comment,
		CreatedBy:   in.ActorID,
	}
	if err := tx.InsertTransfer(ctx, transfer); err != nil {
		return nil, err
	}

	out := &domain.Movement{
		Direction:  domain.DirectionOut,
		Account:    in.FromAccount,
		Amount:     in.Amount,
		HappenedAt: in.HappenedAt,
		Comment:    in.Comment,
		TransferID: &transfer.ID,
		CreatedBy:  in.ActorID,
	}
	if _, err := postMovement(ctx, tx, reg, out); err != nil {
		return nil, err
	}

	incoming := &domain.Movement{
		Direction:  domain.DirectionIn,
		Account:    in.ToAccount,
		Amount:     in.Amount,
		HappenedAt: in.HappenedAt,
		Comment:    in.Comment,
		TransferID: &transfer.ID,
		CreatedBy:  in.ActorID,
	}
	if _, err := postMovement(ctx, tx, reg, incoming); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("transfer posted",
		"hotel_id", in.HotelID,
		"transfer_id", transfer.ID,
		"from", in.FromAccount,
		"to", in.ToAccount,
		"amount", in.Amount.StringFixed(2))
	return transfer, nil
}

func (s *ledgerService) ListTransfers(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Transfer, int32, error) {
	return s.transferRepo.ListByHotel(ctx, hotelID, page, pageSize)
}

func (s *ledgerService) Reconcile(ctx context.Context, hotelID int64) ([]AccountMismatch, error) {
	reg, err := s.ledgerRepo.GetRegister(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	sums, err := s.ledgerRepo.SumMovementsByAccount(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	var mismatches []AccountMismatch
	for _, account := range domain.Accounts {
		stored := reg.Balance(account)
		computed := sums[account]
		if !stored.Equal(computed) {
			mismatches = append(mismatches, AccountMismatch{
				Account:  account,
				Stored:   stored,
				Computed: computed,
			})
		}
	}
	if len(mismatches) > 0 {
		logger.Warn("register out of sync with movement log",
			"hotel_id", hotelID, "accounts", len(mismatches))
	}
	return mismatches, nil
}
