// Package usecase implements the category business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/cms/internal/category/domain"
	"github.com/allisson/cms/internal/database"
	appValidation "github.com/allisson/cms/internal/validation"
)

// CreateCategoryInput contains the input data for category creation
type CreateCategoryInput struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// UpdateCategoryInput contains the input data for a partial category update
type UpdateCategoryInput struct {
	Name *string `json:"name"`
	Key  *string `json:"key"`
}

// UseCase defines the interface for category business logic operations
type UseCase interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, input UpdateCategoryInput) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository interface defines category repository operations
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryUseCase handles category-related business logic
type CategoryUseCase struct {
	txManager    database.TxManager
	categoryRepo CategoryRepository
}

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(txManager database.TxManager, categoryRepo CategoryRepository) UseCase {
	return &CategoryUseCase{
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) validateCreateCategoryInput(input CreateCategoryInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Key,
			validation.Required.Error("key is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("key must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new category
func (uc *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := uc.validateCreateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name: strings.TrimSpace(input.Name),
		Key:  strings.TrimSpace(input.Key),
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.categoryRepo.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) validateUpdateCategoryInput(input UpdateCategoryInput) error {
	fields := []*validation.FieldRules{}

	if input.Name != nil {
		fields = append(fields, validation.Field(&input.Name,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		))
	}
	if input.Key != nil {
		fields = append(fields, validation.Field(&input.Key,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("key must be between 1 and 255 characters"),
		))
	}

	err := validation.ValidateStruct(&input, fields...)
	return appValidation.WrapValidationError(err)
}

// Update applies a partial update to an existing category
func (uc *CategoryUseCase) Update(
	ctx context.Context,
	id int64,
	input UpdateCategoryInput,
) (*domain.Category, error) {
	if err := uc.validateUpdateCategoryInput(input); err != nil {
		return nil, err
	}

	var category *domain.Category
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		category, err = uc.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			category.Name = strings.TrimSpace(*input.Name)
		}
		if input.Key != nil {
			category.Key = strings.TrimSpace(*input.Key)
		}

		return uc.categoryRepo.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID retrieves a category by ID
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// List retrieves categories with pagination
func (uc *CategoryUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, offset, limit)
}

// Delete removes a category by ID
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.categoryRepo.Delete(ctx, id)
	})
}
