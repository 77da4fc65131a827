package postgres

import (
	"context"
	"database/sql"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"
)

// Default taxonomy entries the settlement adapters resolve on first use.
const (
	stayIncomeCategoryName = "Accommodation"
	stayIncomeArticleName  = "Stay payment"
)

type articleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) repository.ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, kind, category_id, name, is_active`

func (r *articleRepository) scanArticle(row *sql.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Kind, &a.CategoryID, &a.Name, &a.IsActive)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM dds_articles WHERE id = $1`
	return r.scanArticle(r.db.QueryRowContext(ctx, query, id))
}

func (r *articleRepository) ListActive(ctx context.Context, kind domain.Kind) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM dds_articles WHERE is_active AND kind = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Kind, &a.CategoryID, &a.Name, &a.IsActive); err != nil {
			return nil, mapError(err)
		}
		articles = append(articles, a)
	}
	return articles, mapError(rows.Err())
}

func (r *articleRepository) FirstActiveIncome(ctx context.Context) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM dds_articles
	          WHERE is_active AND kind = 'income' ORDER BY id LIMIT 1`
	return r.scanArticle(r.db.QueryRowContext(ctx, query))
}

func (r *articleRepository) EnsureArticle(ctx context.Context, kind domain.Kind, name string) (*domain.Article, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dds_articles (kind, name, is_active) VALUES ($1, $2, TRUE)
		 ON CONFLICT (kind, name) WHERE category_id IS NULL DO NOTHING`, kind, name)
	if err != nil {
		return nil, mapError(err)
	}
	query := `SELECT ` + articleColumns + ` FROM dds_articles
	          WHERE kind = $1 AND name = $2 AND category_id IS NULL`
	return r.scanArticle(r.db.QueryRowContext(ctx, query, kind, name))
}

func (r *articleRepository) EnsureStayIncomeArticle(ctx context.Context) (*domain.Article, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dds_categories (kind, name, is_active) VALUES ('income', $1, TRUE)
		 ON CONFLICT (kind, name) WHERE parent_id IS NULL DO NOTHING`, stayIncomeCategoryName)
	if err != nil {
		return nil, mapError(err)
	}
	var categoryID int64
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM dds_categories WHERE kind = 'income' AND name = $1 AND parent_id IS NULL`,
		stayIncomeCategoryName).Scan(&categoryID)
	if err != nil {
		return nil, mapError(err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO dds_articles (kind, category_id, name, is_active) VALUES ('income', $1, $2, TRUE)
		 ON CONFLICT (kind, category_id, name) WHERE category_id IS NOT NULL DO NOTHING`, categoryID, stayIncomeArticleName)
	if err != nil {
		return nil, mapError(err)
	}
	query := `SELECT ` + articleColumns + ` FROM dds_articles
	          WHERE kind = 'income' AND category_id = $1 AND name = $2`
	return r.scanArticle(r.db.QueryRowContext(ctx, query, categoryID, stayIncomeArticleName))
}
