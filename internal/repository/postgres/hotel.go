package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

type hotelRepository struct {
	db *sql.DB
}

func NewHotelRepository(db *sql.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

// Create inserts the hotel and its cash register in one transaction. The
// register is created eagerly so the ledger exists before the first
// movement; the get-or-create path in the ledger covers hotels imported by
// other means.
func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	query := `INSERT INTO hotels (name, is_active) VALUES ($1, $2) RETURNING id, created_at`
	if err := tx.QueryRowContext(ctx, query, hotel.Name, hotel.IsActive).Scan(&hotel.ID, &hotel.CreatedAt); err != nil {
		return mapError(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO cash_registers (hotel_id) VALUES ($1) ON CONFLICT (hotel_id) DO NOTHING`, hotel.ID)
	if err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

func (r *hotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	query := `SELECT id, name, is_active, created_at FROM hotels WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&hotel.ID, &hotel.Name, &hotel.IsActive, &hotel.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context, activeOnly bool) ([]domain.Hotel, error) {
	query := `SELECT id, name, is_active, created_at FROM hotels ORDER BY name`
	if activeOnly {
		query = `SELECT id, name, is_active, created_at FROM hotels WHERE is_active ORDER BY name`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.IsActive, &h.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		hotels = append(hotels, h)
	}
	return hotels, mapError(rows.Err())
}
