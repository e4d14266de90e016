// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"

	"github.com/allisson/cms/internal/authz"
	"github.com/allisson/cms/internal/database"
	apperrors "github.com/allisson/cms/internal/errors"
	"github.com/allisson/cms/internal/user/domain"
	appValidation "github.com/allisson/cms/internal/validation"
)

// CreateUserInput contains the input data for user creation
type CreateUserInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Gender    string   `json:"gender"`
	Roles     []string `json:"roles"`
}

// UpdateUserInput contains the input data for a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	Gender    *string   `json:"gender"`
	Roles     *[]string `json:"roles"`
	Active    *bool     `json:"active"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(txManager database.TxManager, userRepo UserRepository) (UseCase, error) {
	// Interactive policy keeps login latency reasonable for user passwords
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// validateCreateUserInput validates the creation input using jellydator/validation
func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("firstName is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("firstName must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("lastName is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("lastName must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
		validation.Field(&input.Gender,
			validation.Required.Error("gender is required"),
			appValidation.Gender,
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new user with a hashed password. Callers decide which
// roles are allowed; new users default to the USER role when none are given.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{authz.RoleUser}
	}

	user := &domain.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(strings.ToLower(input.Email)),
		Password:  hashedPassword,
		Gender:    strings.ToUpper(input.Gender),
		Roles:     roles,
		Active:    true,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// validateUpdateUserInput validates only the fields present in a partial update
func (uc *UserUseCase) validateUpdateUserInput(input UpdateUserInput) error {
	fields := []*validation.FieldRules{}

	if input.FirstName != nil {
		fields = append(fields, validation.Field(&input.FirstName,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("firstName must be between 1 and 255 characters"),
		))
	}
	if input.LastName != nil {
		fields = append(fields, validation.Field(&input.LastName,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("lastName must be between 1 and 255 characters"),
		))
	}
	if input.Email != nil {
		fields = append(fields, validation.Field(&input.Email,
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		))
	}
	if input.Password != nil {
		fields = append(fields, validation.Field(&input.Password,
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		))
	}
	if input.Gender != nil {
		fields = append(fields, validation.Field(&input.Gender, appValidation.Gender))
	}

	err := validation.ValidateStruct(&input, fields...)
	return appValidation.WrapValidationError(err)
}

// Update applies a partial update to an existing user. A new password is
// re-hashed before storage.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	if err := uc.validateUpdateUserInput(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.FirstName != nil {
			user.FirstName = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			user.LastName = strings.TrimSpace(*input.LastName)
		}
		if input.Email != nil {
			user.Email = strings.TrimSpace(strings.ToLower(*input.Email))
		}
		if input.Gender != nil {
			user.Gender = strings.ToUpper(*input.Gender)
		}
		if input.Roles != nil {
			user.Roles = *input.Roles
		}
		if input.Active != nil {
			user.Active = *input.Active
		}
		if input.Password != nil {
			hashedPassword, err := uc.passwordHasher.Hash([]byte(*input.Password))
			if err != nil {
				return apperrors.Wrap(err, "failed to hash password")
			}
			user.Password = hashedPassword
		}

		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

// List retrieves users with pagination
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Delete removes a user by ID
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Delete(ctx, id)
	})
}
