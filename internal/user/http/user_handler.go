// Package http provides HTTP handlers for user management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/httputil"
	"github.com/allisson/cms/internal/user/http/dto"
	"github.com/allisson/cms/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new user.
// POST /v1/users - open to anonymous clients; the permission gate rejects
// attempts to self-assign the ADMIN role.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), dto.ToCreateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetHandler returns the user loaded by the LoadUser middleware.
// GET /v1/users/:id
func (h *UserHandler) GetHandler(c *gin.Context) {
	user := LoadedUser(c)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListHandler returns a page of users.
// GET /v1/users - requires permission to read every user.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users, offset, limit))
}

// UpdateHandler applies a partial update to the loaded user.
// PATCH /v1/users/:id
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user := LoadedUser(c)
	updated, err := h.userUseCase.Update(c.Request.Context(), user.ID, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// DeleteHandler removes the loaded user.
// DELETE /v1/users/:id
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	user := LoadedUser(c)
	if err := h.userUseCase.Delete(c.Request.Context(), user.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
