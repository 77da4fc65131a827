package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

type stayRepository struct {
	db *sql.DB
}

func NewStayRepository(db *sql.DB) repository.StayRepository {
	return &stayRepository{db: db}
}

const stayColumns = `id, hotel_id, room_label, COALESCE(guest_name, ''), company_id, stay_type,
	          check_in, check_out, total_to_pay, status, dds_operation_id, cash_movement_id,
	          created_by, created_at`

func (r *stayRepository) GetByID(ctx context.Context, id int64) (*domain.Stay, error) {
	var s domain.Stay
	query := `SELECT ` + stayColumns + ` FROM stays WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.HotelID, &s.RoomLabel, &s.GuestName, &s.CompanyID, &s.StayType,
		&s.CheckIn, &s.CheckOut, &s.TotalToPay, &s.Status, &s.OperationID, &s.MovementID,
		&s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *stayRepository) ListByHotel(ctx context.Context, hotelID int64, status domain.StayStatus, page, pageSize int32) ([]domain.Stay, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + stayColumns + ` FROM stays WHERE hotel_id = $1 AND ($2 = '' OR status = $2)
	          ORDER BY check_in DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, hotelID, string(status), pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var stays []domain.Stay
	for rows.Next() {
		var s domain.Stay
		if err := rows.Scan(&s.ID, &s.HotelID, &s.RoomLabel, &s.GuestName, &s.CompanyID,
			&s.StayType, &s.CheckIn, &s.CheckOut, &s.TotalToPay, &s.Status,
			&s.OperationID, &s.MovementID, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, 0, mapError(err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	countQuery := `SELECT count(*) FROM stays WHERE hotel_id = $1 AND ($2 = '' OR status = $2)`
	if err := r.db.QueryRowContext(ctx, countQuery, hotelID, string(status)).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}
	return stays, count, nil
}
