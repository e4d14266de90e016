package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/cms/internal/category/domain"
	"github.com/allisson/cms/internal/database"

	apperrors "github.com/allisson/cms/internal/errors"
)

// MySQLCategoryRepository handles category persistence for MySQL
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category and fills in the generated ID
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (name, ` + "`key`" + `, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query, category.Name, category.Key)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted category id")
	}
	category.ID = id
	return nil
}

// Update persists changes to an existing category
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories SET name = ?, ` + "`key`" + ` = ?, updated_at = NOW() WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, category.Name, category.Key, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *MySQLCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, ` + "`key`" + `, created_at, updated_at FROM categories WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Key, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return &category, nil
}

// List retrieves categories ordered by ID with pagination
func (r *MySQLCategoryRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, ` + "`key`" + `, created_at, updated_at
			  FROM categories ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer func() { _ = rows.Close() }()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID, &category.Name, &category.Key, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Delete removes a category by ID
func (r *MySQLCategoryRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
