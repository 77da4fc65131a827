package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

type folioRepository struct {
	db *sql.DB
}

func NewFolioRepository(db *sql.DB) repository.FolioRepository {
	return &folioRepository{db: db}
}

const folioColumns = `id, hotel_id, company_id, is_closed, closed_at, created_at`

func scanFolio(row *sql.Row) (*domain.Folio, error) {
	var f domain.Folio
	err := row.Scan(&f.ID, &f.HotelID, &f.CompanyID, &f.IsClosed, &f.ClosedAt, &f.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *folioRepository) GetByID(ctx context.Context, id int64) (*domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM company_folios WHERE id = $1`
	return scanFolio(r.db.QueryRowContext(ctx, query, id))
}

func (r *folioRepository) GetByHotelCompany(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM company_folios WHERE hotel_id = $1 AND company_id = $2`
	return scanFolio(r.db.QueryRowContext(ctx, query, hotelID, companyID))
}

func (r *folioRepository) ListByHotel(ctx context.Context, hotelID int64, openOnly bool) ([]domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM company_folios WHERE hotel_id = $1 ORDER BY id DESC`
	if openOnly {
		query = `SELECT ` + folioColumns + ` FROM company_folios
		         WHERE hotel_id = $1 AND NOT is_closed ORDER BY id DESC`
	}
	rows, err := r.db.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var folios []domain.Folio
	for rows.Next() {
		var f domain.Folio
		if err := rows.Scan(&f.ID, &f.HotelID, &f.CompanyID, &f.IsClosed, &f.ClosedAt, &f.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		folios = append(folios, f)
	}
	return folios, mapError(rows.Err())
}

func (r *folioRepository) ListItems(ctx context.Context, folioID int64) ([]domain.FolioItem, error) {
	query := `SELECT id, folio_id, item_type, happened_at, COALESCE(description, ''), amount,
	          signed_amount, stay_id, dds_operation_id, cash_movement_id, created_by, created_at
	          FROM company_folio_items WHERE folio_id = $1 ORDER BY happened_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, folioID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.FolioItem
	for rows.Next() {
		var it domain.FolioItem
		if err := rows.Scan(&it.ID, &it.FolioID, &it.ItemType, &it.HappenedAt, &it.Description,
			&it.Amount, &it.SignedAmount, &it.StayID, &it.OperationID, &it.MovementID,
			&it.CreatedBy, &it.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		items = append(items, it)
	}
	return items, mapError(rows.Err())
}

func (r *folioRepository) Balance(ctx context.Context, folioID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT COALESCE(SUM(signed_amount), 0) FROM company_folio_items WHERE folio_id = $1`
	err := r.db.QueryRowContext(ctx, query, folioID).Scan(&balance)
	return balance, mapError(err)
}

func (r *folioRepository) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	var c domain.Company
	query := `SELECT id, name, COALESCE(contact_name, ''), COALESCE(contact_phone, ''), pay_terms, is_active
	          FROM companies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(
		&c.ID, &c.Name, &c.ContactName, &c.ContactPhone, &c.PayTerms, &c.IsActive)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}
