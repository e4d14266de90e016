// Package domain defines authentication domain types and errors.
package domain

import (
	"github.com/allisson/cms/internal/errors"
)

// TokenPayload is the identity carried inside issued tokens. Timing claims
// are managed by the token service and never appear here, so a payload taken
// from one token can be re-signed into another.
type TokenPayload struct {
	ID    int64
	Email string
}

// Authentication and credential errors. The unauthorized/forbidden split
// drives HTTP status mapping: missing or unreadable credentials are 401,
// rejected credentials and rejected principals are 403.
var (
	// ErrCredentialMissing indicates no credential was presented.
	ErrCredentialMissing = errors.Wrap(errors.ErrUnauthorized, "authorization credential is missing")

	// ErrCredentialMalformed indicates the credential could not be read.
	ErrCredentialMalformed = errors.Wrap(errors.ErrUnauthorized, "authorization credential is malformed")

	// ErrCredentialInvalid indicates the credential failed verification or expired.
	ErrCredentialInvalid = errors.Wrap(errors.ErrForbidden, "authorization credential is invalid")

	// ErrPrincipalNotFound indicates the credential references a principal that no longer exists.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrForbidden, "account no longer exists")

	// ErrPrincipalInactive indicates the principal exists but is deactivated.
	ErrPrincipalInactive = errors.Wrap(errors.ErrForbidden, "account is inactive")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.Wrap(errors.ErrForbidden, "invalid email or password")
)
