package postgres

import (
	"database/sql"
	"errors"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.HotelRepository
	repository.ArticleRepository
	repository.LedgerRepository
	repository.OperationRepository
	repository.TransferRepository
	repository.IncassoRepository
	repository.FolioRepository
	repository.StayRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		HotelRepository:     NewHotelRepository(db),
		ArticleRepository:   NewArticleRepository(db),
		LedgerRepository:    NewLedgerRepository(db),
		OperationRepository: NewOperationRepository(db),
		TransferRepository:  NewTransferRepository(db),
		IncassoRepository:   NewIncassoRepository(db),
		FolioRepository:     NewFolioRepository(db),
		StayRepository:      NewStayRepository(db),
	}
}

const movementUniqConstraint = "uniq_movement_operation_account_direction"

// mapError translates driver-level failures into the domain taxonomy.
// Serialization failures, deadlocks and lock timeouts become
// ErrConcurrencyConflict (whole-operation retry is safe); a duplicate
// movement unique violation becomes ErrDuplicateMovement (effect already
// applied). Everything else passes through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return domain.ErrConcurrencyConflict
		case "23505":
			if pqErr.Constraint == movementUniqConstraint {
				return repository.ErrDuplicateMovement
			}
		}
	}
	return err
}
