package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, hotel_id, register_id, from_account, to_account, amount,
	          happened_at, COALESCE(comment, ''), created_by, created_at`

func (r *transferRepository) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	var t domain.Transfer
	query := `SELECT ` + transferColumns + ` FROM cash_transfers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.HotelID, &t.RegisterID, &t.FromAccount, &t.ToAccount, &t.Amount,
		&t.HappenedAt, &t.Comment, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (r *transferRepository) ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Transfer, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + transferColumns + ` FROM cash_transfers WHERE hotel_id = $1
	          ORDER BY happened_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, hotelID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(&t.ID, &t.HotelID, &t.RegisterID, &t.FromAccount, &t.ToAccount,
			&t.Amount, &t.HappenedAt, &t.Comment, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, 0, mapError(err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM cash_transfers WHERE hotel_id = $1`, hotelID).Scan(&count)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return transfers, count, nil
}
