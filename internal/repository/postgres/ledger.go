package postgres

import (
	"context"
	"database/sql"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

// balanceColumn maps an account to its register column. The account set is
// closed, so an unknown value here is a programming error, not user input;
// callers validate with domain.ParseAccount first.
func balanceColumn(account domain.Account) string {
	switch account {
	case domain.AccountCash:
		return "cash_balance"
	case domain.AccountMkassa:
		return "mkassa_balance"
	case domain.AccountZadatok:
		return "zadatok_balance"
	case domain.AccountOptima:
		return "optima_balance"
	}
	return ""
}

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

const registerColumns = `id, hotel_id, cash_balance, mkassa_balance, zadatok_balance, optima_balance, updated_at`

func scanRegister(row *sql.Row) (*domain.CashRegister, error) {
	var reg domain.CashRegister
	err := row.Scan(&reg.ID, &reg.HotelID, &reg.CashBalance, &reg.MkassaBalance,
		&reg.ZadatokBalance, &reg.OptimaBalance, &reg.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &reg, nil
}

func (r *ledgerRepository) GetOrCreateRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	// Idempotent under concurrency: the insert is a no-op when the unique
	// (hotel_id) row already exists, and the reselect always finds it.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cash_registers (hotel_id) VALUES ($1) ON CONFLICT (hotel_id) DO NOTHING`, hotelID)
	if err != nil {
		return nil, mapError(err)
	}
	return r.GetRegister(ctx, hotelID)
}

func (r *ledgerRepository) GetRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	query := `SELECT ` + registerColumns + ` FROM cash_registers WHERE hotel_id = $1`
	return scanRegister(r.db.QueryRowContext(ctx, query, hotelID))
}

const movementColumns = `id, register_id, hotel_id, direction, account, amount, happened_at,
	          COALESCE(comment, ''), dds_operation_id, incasso_id, transfer_id, created_by, created_at`

func scanMovement(scan func(dest ...any) error) (*domain.Movement, error) {
	var m domain.Movement
	err := scan(&m.ID, &m.RegisterID, &m.HotelID, &m.Direction, &m.Account, &m.Amount,
		&m.HappenedAt, &m.Comment, &m.OperationID, &m.IncassoID, &m.TransferID,
		&m.CreatedBy, &m.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *ledgerRepository) ListMovements(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Movement, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + movementColumns + `
	          FROM cash_movements WHERE hotel_id = $1
	          ORDER BY happened_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, hotelID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	countQuery := `SELECT count(*) FROM cash_movements WHERE hotel_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, hotelID).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}
	return movements, count, nil
}

func (r *ledgerRepository) GetMovementByOperation(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + `
	          FROM cash_movements WHERE dds_operation_id = $1 AND account = $2 AND direction = $3`
	return scanMovement(r.db.QueryRowContext(ctx, query, operationID, account, direction).Scan)
}

func (r *ledgerRepository) SumMovementsByAccount(ctx context.Context, hotelID int64) (map[domain.Account]decimal.Decimal, error) {
	query := `SELECT account,
	                 COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE -amount END), 0)
	          FROM cash_movements WHERE hotel_id = $1 GROUP BY account`
	rows, err := r.db.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sums := make(map[domain.Account]decimal.Decimal, len(domain.Accounts))
	for _, account := range domain.Accounts {
		sums[account] = decimal.Zero
	}
	for rows.Next() {
		var account domain.Account
		var sum decimal.Decimal
		if err := rows.Scan(&account, &sum); err != nil {
			return nil, mapError(err)
		}
		sums[account] = sum
	}
	return sums, mapError(rows.Err())
}

func (r *ledgerRepository) Begin(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapError(err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx implements repository.LedgerTx on one *sql.Tx. The register row
// lock taken by LockRegister serializes every balance-mutating sequence for
// a hotel until Commit or Rollback.
type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) LockRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO cash_registers (hotel_id) VALUES ($1) ON CONFLICT (hotel_id) DO NOTHING`, hotelID)
	if err != nil {
		return nil, mapError(err)
	}
	query := `SELECT ` + registerColumns + ` FROM cash_registers WHERE hotel_id = $1 FOR UPDATE`
	return scanRegister(t.tx.QueryRowContext(ctx, query, hotelID))
}

func (t *ledgerTx) SetBalance(ctx context.Context, registerID int64, account domain.Account, value decimal.Decimal) error {
	column := balanceColumn(account)
	if column == "" {
		return domain.ErrUnknownAccount
	}
	query := `UPDATE cash_registers SET ` + column + ` = $1, updated_at = NOW() WHERE id = $2`
	_, err := t.tx.ExecContext(ctx, query, value, registerID)
	return mapError(err)
}

func (t *ledgerTx) InsertMovement(ctx context.Context, m *domain.Movement) error {
	query := `INSERT INTO cash_movements
	          (register_id, hotel_id, direction, account, amount, happened_at, comment,
	           dds_operation_id, incasso_id, transfer_id, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		m.RegisterID, m.HotelID, m.Direction, m.Account, m.Amount, m.HappenedAt, m.Comment,
		m.OperationID, m.IncassoID, m.TransferID, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) MovementExists(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM cash_movements
	          WHERE dds_operation_id = $1 AND account = $2 AND direction = $3)`
	err := t.tx.QueryRowContext(ctx, query, operationID, account, direction).Scan(&exists)
	return exists, mapError(err)
}

func (t *ledgerTx) InsertOperation(ctx context.Context, op *domain.Operation) error {
	query := `INSERT INTO dds_operations
	          (hotel_id, article_id, amount, happened_at, method, counterparty, comment, source, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		op.HotelID, op.ArticleID, op.Amount, op.HappenedAt, op.Method,
		op.Counterparty, op.Comment, op.Source, op.CreatedBy,
	).Scan(&op.ID, &op.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) InsertTransfer(ctx context.Context, tr *domain.Transfer) error {
	query := `INSERT INTO cash_transfers
	          (hotel_id, register_id, from_account, to_account, amount, happened_at, comment, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		tr.HotelID, tr.RegisterID, tr.FromAccount, tr.ToAccount, tr.Amount,
		tr.HappenedAt, tr.Comment, tr.CreatedBy,
	).Scan(&tr.ID, &tr.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) InsertIncasso(ctx context.Context, inc *domain.Incasso) error {
	query := `INSERT INTO cash_incassos
	          (hotel_id, amount, happened_at, method, comment, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		inc.HotelID, inc.Amount, inc.HappenedAt, inc.Method, inc.Comment, inc.CreatedBy,
	).Scan(&inc.ID, &inc.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) GetOrCreateFolio(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error) {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO company_folios (hotel_id, company_id) VALUES ($1, $2)
		 ON CONFLICT (hotel_id, company_id) DO NOTHING`, hotelID, companyID)
	if err != nil {
		return nil, mapError(err)
	}
	var folio domain.Folio
	query := `SELECT id, hotel_id, company_id, is_closed, closed_at, created_at
	          FROM company_folios WHERE hotel_id = $1 AND company_id = $2`
	err = t.tx.QueryRowContext(ctx, query, hotelID, companyID).Scan(
		&folio.ID, &folio.HotelID, &folio.CompanyID, &folio.IsClosed, &folio.ClosedAt, &folio.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &folio, nil
}

func (t *ledgerTx) InsertFolioItem(ctx context.Context, item *domain.FolioItem) error {
	query := `INSERT INTO company_folio_items
	          (folio_id, item_type, happened_at, description, amount, signed_amount,
	           stay_id, dds_operation_id, cash_movement_id, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		item.FolioID, item.ItemType, item.HappenedAt, item.Description, item.Amount,
		item.SignedAmount, item.StayID, item.OperationID, item.MovementID, item.CreatedBy,
	).Scan(&item.ID, &item.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) FolioBalance(ctx context.Context, folioID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT COALESCE(SUM(signed_amount), 0) FROM company_folio_items WHERE folio_id = $1`
	err := t.tx.QueryRowContext(ctx, query, folioID).Scan(&balance)
	return balance, mapError(err)
}

func (t *ledgerTx) SetFolioClosed(ctx context.Context, folioID int64, closed bool, closedAt *time.Time) error {
	query := `UPDATE company_folios SET is_closed = $1, closed_at = $2 WHERE id = $3`
	_, err := t.tx.ExecContext(ctx, query, closed, closedAt, folioID)
	return mapError(err)
}

func (t *ledgerTx) InsertStay(ctx context.Context, stay *domain.Stay) error {
	query := `INSERT INTO stays
	          (hotel_id, room_label, guest_name, company_id, stay_type, check_in, check_out,
	           total_to_pay, status, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		stay.HotelID, stay.RoomLabel, stay.GuestName, stay.CompanyID, stay.StayType,
		stay.CheckIn, stay.CheckOut, stay.TotalToPay, stay.Status, stay.CreatedBy,
	).Scan(&stay.ID, &stay.CreatedAt)
	return mapError(err)
}

func (t *ledgerTx) UpdateStayStatus(ctx context.Context, stayID int64, status domain.StayStatus) error {
	_, err := t.tx.ExecContext(ctx, `UPDATE stays SET status = $1 WHERE id = $2`, status, stayID)
	return mapError(err)
}

func (t *ledgerTx) UpdateStaySettlement(ctx context.Context, stayID int64, operationID, movementID *int64) error {
	query := `UPDATE stays SET dds_operation_id = $1, cash_movement_id = $2 WHERE id = $3`
	_, err := t.tx.ExecContext(ctx, query, operationID, movementID, stayID)
	return mapError(err)
}

func (t *ledgerTx) Commit() error {
	return mapError(t.tx.Commit())
}

func (t *ledgerTx) Rollback() error {
	return t.tx.Rollback()
}
