package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/httpx"
	"orientalgroup/internal/validation"
)

type SubmitUseCase interface {
	Submit(ctx context.Context, req dto.SubmitQuoteRequest) (*dto.SubmitQuoteResponse, error)
}

type StatusUseCase interface {
	UpdateStatus(ctx context.Context, id uint, status string) error
	AttachQuote(ctx context.Context, id uint, amount decimal.Decimal, notes *string) error
}

type QueryUseCase interface {
	GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context) ([]dto.OrderSummaryDTO, error)
	UserStats(ctx context.Context, email string) (*dto.UserStatsResponse, error)
}

type OrdersController struct {
	submit SubmitUseCase
	status StatusUseCase
	query  QueryUseCase
	logger *zap.Logger
}

func NewOrdersController(submit SubmitUseCase, status StatusUseCase, query QueryUseCase, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		submit: submit,
		status: status,
		query:  query,
		logger: logger,
	}
}

func (c *OrdersController) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SubmitQuoteRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	resp, err := c.submit.Submit(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, resp)
}

func (c *OrdersController) GetOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := orderIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	resp, err := c.query.GetOrder(r.Context(), id)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, resp)
}

func (c *OrdersController) ListOrders(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	summaries, err := c.query.ListOrders(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, summaries)
}

func (c *OrdersController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := orderIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.status.UpdateStatus(r.Context(), id, req.Status); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *OrdersController) AttachQuote(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := orderIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.AttachQuoteRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.status.AttachQuote(r.Context(), id, req.QuoteAmount, req.QuoteNotes); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *OrdersController) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	email := r.URL.Query().Get("email")
	if email == "" {
		httpx.WriteError(logger, w, apperrors.NewValidationError("email parameter is required", apperrors.ValidationDetail{
			Field:   "email",
			Message: "email query parameter is required",
		}))
		return
	}

	stats, err := c.query.UserStats(r.Context(), email)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, stats)
}

func (c *OrdersController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func orderIDParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return uint(id), nil
}
