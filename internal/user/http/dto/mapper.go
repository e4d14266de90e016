package dto

import (
	"github.com/allisson/cms/internal/user/domain"
	"github.com/allisson/cms/internal/user/usecase"
)

// ToCreateUserInput converts a create request to a use case input
func ToCreateUserInput(req CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
		Roles:     req.Roles,
	}
}

// ToUpdateUserInput converts an update request to a use case input
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
		Roles:     req.Roles,
		Active:    req.Active,
	}
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Gender:    user.Gender,
		Roles:     user.Roles,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToListUsersResponse converts a page of domain users to a response DTO
func ToListUsersResponse(users []*domain.User, offset, limit int) ListUsersResponse {
	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserResponse(user))
	}
	return ListUsersResponse{
		Users:  items,
		Offset: offset,
		Limit:  limit,
	}
}
