// Package repository provides data persistence implementations for article entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/cms/internal/article/domain"
	"github.com/allisson/cms/internal/database"

	apperrors "github.com/allisson/cms/internal/errors"
)

// PostgreSQLArticleRepository handles article persistence for PostgreSQL
type PostgreSQLArticleRepository struct {
	db *sql.DB
}

// NewPostgreSQLArticleRepository creates a new PostgreSQLArticleRepository
func NewPostgreSQLArticleRepository(db *sql.DB) *PostgreSQLArticleRepository {
	return &PostgreSQLArticleRepository{
		db: db,
	}
}

// Create inserts a new article and fills in the generated ID
func (r *PostgreSQLArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO articles
				(title, description, short_description, photo, author_id, category_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Description,
		article.ShortDescription,
		article.Photo,
		article.AuthorID,
		article.CategoryID,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return mapArticleWriteError(err, "failed to create article")
	}
	return nil
}

// Update persists changes to an existing article
func (r *PostgreSQLArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE articles
			  SET title = $1, description = $2, short_description = $3, photo = $4,
				  category_id = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		article.Title,
		article.Description,
		article.ShortDescription,
		article.Photo,
		article.CategoryID,
		article.ID,
	)
	if err != nil {
		return mapArticleWriteError(err, "failed to update article")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// GetByID retrieves an article by ID
func (r *PostgreSQLArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, short_description, photo, author_id, category_id, created_at, updated_at
			  FROM articles WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.ShortDescription,
		&article.Photo,
		&article.AuthorID,
		&article.CategoryID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get article by id")
	}

	return &article, nil
}

// List retrieves articles ordered by newest first with pagination
func (r *PostgreSQLArticleRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, short_description, photo, author_id, category_id, created_at, updated_at
			  FROM articles ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list articles")
	}
	defer func() { _ = rows.Close() }()

	articles := []*domain.Article{}
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Description,
			&article.ShortDescription,
			&article.Photo,
			&article.AuthorID,
			&article.CategoryID,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan article")
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

// Delete removes an article by ID
func (r *PostgreSQLArticleRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete article")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if rows == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// mapArticleWriteError translates driver errors into domain errors
func mapArticleWriteError(err error, wrapMsg string) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry"):
		return domain.ErrArticleAlreadyExists
	case strings.Contains(errMsg, "foreign key"):
		return domain.ErrInvalidReference
	default:
		return apperrors.Wrap(err, wrapMsg)
	}
}
