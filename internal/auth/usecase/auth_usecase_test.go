package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/cms/internal/auth/domain"
	"github.com/allisson/cms/internal/auth/service"
	apperrors "github.com/allisson/cms/internal/errors"
	userDomain "github.com/allisson/cms/internal/user/domain"
)

// MockPrincipalStore is a mock implementation of PrincipalStore
type MockPrincipalStore struct {
	mock.Mock
}

func (m *MockPrincipalStore) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockPrincipalStore) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func newTestAuthUseCase(t *testing.T) (AuthUseCase, *MockPrincipalStore, service.TokenService, service.SecretService) {
	t.Helper()

	tokenService, err := service.NewJWTTokenService(service.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	secretService := service.NewSecretService()
	store := &MockPrincipalStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthUseCase(store, tokenService, secretService, logger), store, tokenService, secretService
}

func activeUser(t *testing.T, secretService service.SecretService, password string) *userDomain.User {
	t.Helper()

	hash, err := secretService.HashSecret(password)
	require.NoError(t, err)

	return &userDomain.User{
		ID:       7,
		Email:    "john@example.com",
		Password: hash,
		Roles:    []string{"USER"},
		Active:   true,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		useCase, store, tokenService, secretService := newTestAuthUseCase(t)
		user := activeUser(t, secretService, "SecurePass123!")

		store.On("GetByEmail", mock.Anything, "john@example.com").Return(user, nil)

		output, err := useCase.Login(context.Background(), LoginInput{
			Email:    "john@example.com",
			Password: "SecurePass123!",
		})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)

		payload, err := tokenService.VerifyAccessToken(output.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, authDomain.TokenPayload{ID: 7, Email: "john@example.com"}, payload)

		_, err = tokenService.VerifyRefreshToken(output.RefreshToken)
		assert.NoError(t, err)

		store.AssertExpectations(t)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		useCase, store, _, _ := newTestAuthUseCase(t)

		store.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, userDomain.ErrUserNotFound)

		output, err := useCase.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "SecurePass123!",
		})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, output)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		useCase, store, _, secretService := newTestAuthUseCase(t)
		user := activeUser(t, secretService, "SecurePass123!")

		store.On("GetByEmail", mock.Anything, "john@example.com").Return(user, nil)

		output, err := useCase.Login(context.Background(), LoginInput{
			Email:    "john@example.com",
			Password: "WrongPass123!",
		})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, output)
	})

	t.Run("rejects inactive account", func(t *testing.T) {
		useCase, store, _, secretService := newTestAuthUseCase(t)
		user := activeUser(t, secretService, "SecurePass123!")
		user.Active = false

		store.On("GetByEmail", mock.Anything, "john@example.com").Return(user, nil)

		output, err := useCase.Login(context.Background(), LoginInput{
			Email:    "john@example.com",
			Password: "SecurePass123!",
		})

		assert.ErrorIs(t, err, authDomain.ErrPrincipalInactive)
		assert.Nil(t, output)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		useCase, _, _, _ := newTestAuthUseCase(t)

		output, err := useCase.Login(context.Background(), LoginInput{Email: "not-an-email"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, output)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		useCase, store, _, _ := newTestAuthUseCase(t)
		storeErr := errors.New("connection refused")

		store.On("GetByEmail", mock.Anything, "john@example.com").Return(nil, storeErr)

		output, err := useCase.Login(context.Background(), LoginInput{
			Email:    "john@example.com",
			Password: "SecurePass123!",
		})

		assert.Equal(t, storeErr, err)
		assert.Nil(t, output)
	})
}

func TestAuthUseCase_Refresh(t *testing.T) {
	t.Run("exchanges refresh token for access token", func(t *testing.T) {
		useCase, _, tokenService, _ := newTestAuthUseCase(t)

		refreshToken, err := tokenService.IssueRefreshToken(
			authDomain.TokenPayload{ID: 7, Email: "john@example.com"},
		)
		require.NoError(t, err)

		accessToken, err := useCase.Refresh(context.Background(), refreshToken)
		require.NoError(t, err)

		payload, err := tokenService.VerifyAccessToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7), payload.ID)
	})

	t.Run("rejects access token", func(t *testing.T) {
		useCase, _, tokenService, _ := newTestAuthUseCase(t)

		accessToken, err := tokenService.IssueAccessToken(
			authDomain.TokenPayload{ID: 7, Email: "john@example.com"},
		)
		require.NoError(t, err)

		_, err = useCase.Refresh(context.Background(), accessToken)
		assert.ErrorIs(t, err, authDomain.ErrCredentialInvalid)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		useCase, _, _, _ := newTestAuthUseCase(t)

		_, err := useCase.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrCredentialInvalid)
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	issueToken := func(t *testing.T, tokenService service.TokenService) string {
		t.Helper()
		token, err := tokenService.IssueAccessToken(
			authDomain.TokenPayload{ID: 7, Email: "john@example.com"},
		)
		require.NoError(t, err)
		return token
	}

	t.Run("returns principal for valid token", func(t *testing.T) {
		useCase, store, tokenService, secretService := newTestAuthUseCase(t)
		user := activeUser(t, secretService, "SecurePass123!")

		store.On("GetByID", mock.Anything, int64(7)).Return(user, nil)

		got, err := useCase.Authenticate(context.Background(), issueToken(t, tokenService))
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		useCase, _, _, _ := newTestAuthUseCase(t)

		_, err := useCase.Authenticate(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrCredentialInvalid)
	})

	t.Run("rejects token for deleted principal", func(t *testing.T) {
		useCase, store, tokenService, _ := newTestAuthUseCase(t)

		store.On("GetByID", mock.Anything, int64(7)).Return(nil, userDomain.ErrUserNotFound)

		_, err := useCase.Authenticate(context.Background(), issueToken(t, tokenService))
		assert.ErrorIs(t, err, authDomain.ErrPrincipalNotFound)
	})

	t.Run("rejects token for inactive principal", func(t *testing.T) {
		useCase, store, tokenService, secretService := newTestAuthUseCase(t)
		user := activeUser(t, secretService, "SecurePass123!")
		user.Active = false

		store.On("GetByID", mock.Anything, int64(7)).Return(user, nil)

		_, err := useCase.Authenticate(context.Background(), issueToken(t, tokenService))
		assert.ErrorIs(t, err, authDomain.ErrPrincipalInactive)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		useCase, store, tokenService, _ := newTestAuthUseCase(t)
		storeErr := errors.New("connection refused")

		store.On("GetByID", mock.Anything, int64(7)).Return(nil, storeErr)

		_, err := useCase.Authenticate(context.Background(), issueToken(t, tokenService))
		assert.Equal(t, storeErr, err)
	})
}
