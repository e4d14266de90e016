package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/cms/internal/auth/domain"
)

// JWTConfig holds the signing configuration for both token classes. It is
// built once at startup and never changes afterwards.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// tokenClaims is the wire format of issued tokens: the identity payload plus
// the registered timing claims.
type tokenClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtTokenService implements TokenService with HMAC-SHA256 signatures.
type jwtTokenService struct {
	config JWTConfig
}

// NewJWTTokenService validates the signing configuration and creates a new
// TokenService. Both secrets are required and must differ, otherwise access
// and refresh tokens would become interchangeable.
func NewJWTTokenService(config JWTConfig) (TokenService, error) {
	if config.AccessSecret == "" || config.RefreshSecret == "" {
		return nil, fmt.Errorf("jwt access and refresh secrets are required")
	}
	if config.AccessSecret == config.RefreshSecret {
		return nil, fmt.Errorf("jwt access and refresh secrets must differ")
	}
	if config.AccessTTL <= 0 || config.RefreshTTL <= 0 {
		return nil, fmt.Errorf("jwt token lifetimes must be positive")
	}

	return &jwtTokenService{config: config}, nil
}

// IssueAccessToken signs a short-lived access token for the payload.
func (s *jwtTokenService) IssueAccessToken(payload domain.TokenPayload) (string, error) {
	return s.issue(payload, s.config.AccessSecret, s.config.AccessTTL)
}

// IssueRefreshToken signs a long-lived refresh token for the payload.
func (s *jwtTokenService) IssueRefreshToken(payload domain.TokenPayload) (string, error) {
	return s.issue(payload, s.config.RefreshSecret, s.config.RefreshTTL)
}

// VerifyAccessToken verifies an access token and returns its payload.
func (s *jwtTokenService) VerifyAccessToken(token string) (domain.TokenPayload, error) {
	return s.verify(token, s.config.AccessSecret)
}

// VerifyRefreshToken verifies a refresh token and returns its payload.
func (s *jwtTokenService) VerifyRefreshToken(token string) (domain.TokenPayload, error) {
	return s.verify(token, s.config.RefreshSecret)
}

// Rotate exchanges a valid refresh token for a fresh access token. The
// identity payload carries over; every timing claim is issued anew.
func (s *jwtTokenService) Rotate(refreshToken string) (string, error) {
	payload, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.IssueAccessToken(payload)
}

func (s *jwtTokenService) issue(payload domain.TokenPayload, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		ID:    payload.ID,
		Email: payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtTokenService) verify(token string, secret string) (domain.TokenPayload, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		// The reason (expired, tampered, wrong key) is withheld from clients
		return domain.TokenPayload{}, domain.ErrCredentialInvalid
	}

	return domain.TokenPayload{ID: claims.ID, Email: claims.Email}, nil
}
