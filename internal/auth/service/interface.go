// Package service provides technical services for authentication operations.
//
// This package implements the JWT token service and the password verification
// service used by the login flow and the authentication middleware.
package service

import (
	"github.com/allisson/cms/internal/auth/domain"
)

// SecretService defines operations for password hashing and validation.
// Implementations must use industry-standard hashing algorithms
// (e.g., bcrypt, argon2).
type SecretService interface {
	// HashSecret hashes a plain text secret using a secure hashing algorithm.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret compares a plain text secret against a hashed secret.
	// Returns true if the plain secret matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// TokenService defines operations for issuing and verifying the two token
// classes. Access and refresh tokens are signed with different keys, so a
// token of one class never verifies as the other.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the payload.
	IssueAccessToken(payload domain.TokenPayload) (string, error)

	// IssueRefreshToken signs a long-lived refresh token for the payload.
	IssueRefreshToken(payload domain.TokenPayload) (string, error)

	// VerifyAccessToken verifies an access token and returns its payload.
	// Returns domain.ErrCredentialInvalid for tampered or expired tokens.
	VerifyAccessToken(token string) (domain.TokenPayload, error)

	// VerifyRefreshToken verifies a refresh token and returns its payload.
	// Returns domain.ErrCredentialInvalid for tampered or expired tokens.
	VerifyRefreshToken(token string) (domain.TokenPayload, error)

	// Rotate verifies a refresh token and signs a fresh access token from its
	// payload. All timing claims are re-issued; only the identity carries over.
	Rotate(refreshToken string) (string, error)
}
