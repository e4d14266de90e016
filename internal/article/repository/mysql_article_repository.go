package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/cms/internal/article/domain"
	"github.com/allisson/cms/internal/database"

	apperrors "github.com/allisson/cms/internal/errors"
)

// MySQLArticleRepository handles article persistence for MySQL
type MySQLArticleRepository struct {
	db *sql.DB
}

// NewMySQLArticleRepository creates a new MySQLArticleRepository
func NewMySQLArticleRepository(db *sql.DB) *MySQLArticleRepository {
	return &MySQLArticleRepository{
		db: db,
	}
}

// Create inserts a new article and fills in the generated ID
func (r *MySQLArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO articles
				(title, description, short_description, photo, author_id, category_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(
		ctx,
		query,
		article.Title,
		article.Description,
		article.ShortDescription,
		article.Photo,
		article.AuthorID,
		article.CategoryID,
	)
	if err != nil {
		return mapArticleWriteError(err, "failed to create article")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted article id")
	}
	article.ID = id
	return nil
}

// Update persists changes to an existing article
func (r *MySQLArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE articles
			  SET title = ?, description = ?, short_description = ?, photo = ?,
				  category_id = ?, updated_at = NOW()
			  WHERE id = ?`

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
func (r *MySQLArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, short_description, photo, author_id, category_id, created_at, updated_at
			  FROM articles WHERE id = ?`

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
func (r *MySQLArticleRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, short_description, photo, author_id, category_id, created_at, updated_at
			  FROM articles ORDER BY id DESC LIMIT ? OFFSET ?`

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
func (r *MySQLArticleRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
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
