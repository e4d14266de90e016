// Package dto contains request and response types for authentication endpoints.
package dto

import (
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
)

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued access token. The refresh token
// travels only in the http-only cookie, never in a response body.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ToLoginInput converts a LoginRequest to a use case input.
func ToLoginInput(req LoginRequest) authUseCase.LoginInput {
	return authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}
