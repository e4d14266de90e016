// Package usecase implements the authentication business logic: login,
// token refresh, and per-request principal authentication.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/cms/internal/auth/domain"
	"github.com/allisson/cms/internal/auth/service"
	apperrors "github.com/allisson/cms/internal/errors"
	userDomain "github.com/allisson/cms/internal/user/domain"
	appValidation "github.com/allisson/cms/internal/validation"
)

// LoginInput contains the credentials for a login attempt
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput contains the issued token pair and the authenticated user
type LoginOutput struct {
	User         *userDomain.User
	AccessToken  string
	RefreshToken string
}

// AuthUseCase defines the interface for authentication business logic
type AuthUseCase interface {
	// Login verifies credentials and issues a token pair. Wrong email, wrong
	// password, and deactivated accounts are all rejected with forbidden
	// errors; the response never reveals which check failed.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Authenticate verifies an access token and loads its principal fresh
	// from the store, so revoked roles or deactivation take effect
	// immediately rather than at token expiry.
	Authenticate(ctx context.Context, accessToken string) (*userDomain.User, error)
}

// PrincipalStore loads principals for authentication.
type PrincipalStore interface {
	GetByID(ctx context.Context, id int64) (*userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// authUseCase handles authentication flows
type authUseCase struct {
	store         PrincipalStore
	tokenService  service.TokenService
	secretService service.SecretService
	logger        *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	store PrincipalStore,
	tokenService service.TokenService,
	secretService service.SecretService,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		store:         store,
		tokenService:  tokenService,
		secretService: secretService,
		logger:        logger,
	}
}

func (uc *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies credentials and issues an access/refresh token pair.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.validateLoginInput(input); err != nil {
		return nil, err
	}

	user, err := uc.store.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			uc.logger.Debug("login failed: unknown email")
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.secretService.CompareSecret(input.Password, user.Password) {
		uc.logger.Debug("login failed: wrong password", slog.Int64("user_id", user.ID))
		return nil, authDomain.ErrInvalidCredentials
	}

	if !user.Active {
		uc.logger.Debug("login failed: inactive account", slog.Int64("user_id", user.ID))
		return nil, authDomain.ErrPrincipalInactive
	}

	payload := authDomain.TokenPayload{ID: user.ID, Email: user.Email}

	accessToken, err := uc.tokenService.IssueAccessToken(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := uc.tokenService.IssueRefreshToken(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue refresh token")
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	accessToken, err := uc.tokenService.Rotate(refreshToken)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// Authenticate verifies an access token and loads its principal.
func (uc *authUseCase) Authenticate(ctx context.Context, accessToken string) (*userDomain.User, error) {
	payload, err := uc.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.store.GetByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, err
	}

	if !user.Active {
		return nil, authDomain.ErrPrincipalInactive
	}

	return user, nil
}
