// Package dto contains request and response types for the user HTTP API.
package dto

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Gender    string   `json:"gender"`
	Roles     []string `json:"roles"`
}

// UpdateUserRequest is the payload for a partial user update
type UpdateUserRequest struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	Gender    *string   `json:"gender"`
	Roles     *[]string `json:"roles"`
	Active    *bool     `json:"active"`
}
