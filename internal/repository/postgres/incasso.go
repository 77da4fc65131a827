package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

type incassoRepository struct {
	db *sql.DB
}

func NewIncassoRepository(db *sql.DB) repository.IncassoRepository {
	return &incassoRepository{db: db}
}

const incassoColumns = `id, hotel_id, amount, happened_at, method, COALESCE(comment, ''), created_by, created_at`

func (r *incassoRepository) GetByID(ctx context.Context, id int64) (*domain.Incasso, error) {
	var inc domain.Incasso
	query := `SELECT ` + incassoColumns + ` FROM cash_incassos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inc.ID, &inc.HotelID, &inc.Amount, &inc.HappenedAt, &inc.Method,
		&inc.Comment, &inc.CreatedBy, &inc.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &inc, nil
}

func (r *incassoRepository) ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Incasso, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + incassoColumns + ` FROM cash_incassos WHERE hotel_id = $1
	          ORDER BY happened_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, hotelID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var incassos []domain.Incasso
	for rows.Next() {
		var inc domain.Incasso
		if err := rows.Scan(&inc.ID, &inc.HotelID, &inc.Amount, &inc.HappenedAt,
			&inc.Method, &inc.Comment, &inc.CreatedBy, &inc.CreatedAt); err != nil {
			return nil, 0, mapError(err)
		}
		incassos = append(incassos, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM cash_incassos WHERE hotel_id = $1`, hotelID).Scan(&count)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return incassos, count, nil
}
