package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/httpx"
	"orientalgroup/internal/validation"
)

type ManageUsersUseCase interface {
	List(ctx context.Context) ([]dto.UserDTO, error)
	UpdateRole(ctx context.Context, id uint, role string) error
	Delete(ctx context.Context, id uint) error
}

type UsersController struct {
	users  ManageUsersUseCase
	logger *zap.Logger
}

func NewUsersController(users ManageUsersUseCase, logger *zap.Logger) *UsersController {
	return &UsersController{users: users, logger: logger}
}

func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	users, err := c.users.List(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, users)
}

func (c *UsersController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := userIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.users.UpdateRole(r.Context(), id, req.Role); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := userIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.users.Delete(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *UsersController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func userIDParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid user id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return uint(id), nil
}
