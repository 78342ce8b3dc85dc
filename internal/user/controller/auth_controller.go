package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orientalgroup/internal/auth"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/httpx"
	"orientalgroup/internal/validation"
)

type AuthUseCase interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserDTO, error)
}

type AuthController struct {
	auth   AuthUseCase
	logger *zap.Logger
}

func NewAuthController(authUC AuthUseCase, logger *zap.Logger) *AuthController {
	return &AuthController{auth: authUC, logger: logger}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SignupRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	resp, err := c.auth.Signup(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, resp)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.LoginRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	resp, err := c.auth.Login(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, resp)
}

// Me returns the profile of the authenticated caller.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		httpx.WriteError(logger, w, apperrors.NewUnauthorizedError("missing or invalid token"))
		return
	}

	user, err := c.auth.GetUser(r.Context(), claims.UserID)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, user)
}

func (c *AuthController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}
