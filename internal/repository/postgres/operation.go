package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

type operationRepository struct {
	db *sql.DB
}

func NewOperationRepository(db *sql.DB) repository.OperationRepository {
	return &operationRepository{db: db}
}

const operationColumns = `o.id, o.hotel_id, o.article_id, a.kind, a.name, o.amount, o.happened_at,
	          o.method, COALESCE(o.counterparty, ''), COALESCE(o.comment, ''), COALESCE(o.source, ''),
	          o.created_by, o.created_at, o.is_voided, COALESCE(o.void_reason, ''), o.voided_at, o.voided_by`

func scanOperation(scan func(dest ...any) error) (*domain.Operation, error) {
	var op domain.Operation
	err := scan(&op.ID, &op.HotelID, &op.ArticleID, &op.ArticleKind, &op.ArticleName,
		&op.Amount, &op.HappenedAt, &op.Method, &op.Counterparty, &op.Comment, &op.Source,
		&op.CreatedBy, &op.CreatedAt, &op.IsVoided, &op.VoidReason, &op.VoidedAt, &op.VoidedBy)
	if err != nil {
		return nil, mapError(err)
	}
	return &op, nil
}

func (r *operationRepository) GetByID(ctx context.Context, id int64) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + `
	          FROM dds_operations o JOIN dds_articles a ON a.id = o.article_id
	          WHERE o.id = $1`
	return scanOperation(r.db.QueryRowContext(ctx, query, id).Scan)
}

func (r *operationRepository) List(ctx context.Context, f repository.OperationFilter) ([]domain.Operation, int32, error) {
	where := `WHERE o.hotel_id = $1`
	args := []any{f.HotelID}

	if f.Kind != "" {
		args = append(args, f.Kind)
		where += fmt.Sprintf(" AND a.kind = $%d", len(args))
	}
	if f.ArticleID != 0 {
		args = append(args, f.ArticleID)
		where += fmt.Sprintf(" AND o.article_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND o.happened_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND o.happened_at <= $%d", len(args))
	}
	if !f.IncludeVoided {
		where += " AND NOT o.is_voided"
	}
	if f.ExcludeIncasso {
		args = append(args, domain.SourceIncasso)
		where += fmt.Sprintf(" AND COALESCE(o.source, '') <> $%d", len(args))
	}

	countQuery := `SELECT count(*) FROM dds_operations o JOIN dds_articles a ON a.id = o.article_id ` + where
	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT `+operationColumns+`
	          FROM dds_operations o JOIN dds_articles a ON a.id = o.article_id
	          %s ORDER BY o.happened_at DESC, o.id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		ops = append(ops, *op)
	}
	return ops, count, mapError(rows.Err())
}

func (r *operationRepository) MarkVoided(ctx context.Context, id int64, voidedBy int64, reason string, at time.Time) error {
	if len(reason) > 255 {
		reason = reason[:255]
	}
	query := `UPDATE dds_operations
	          SET is_voided = TRUE, void_reason = $1, voided_at = $2, voided_by = $3
	          WHERE id = $4 AND NOT is_voided`
	res, err := r.db.ExecContext(ctx, query, reason, at, voidedBy, id)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return domain.ErrOperationVoided
	}
	return nil
}
