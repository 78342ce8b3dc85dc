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

type ContactUseCase interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (*dto.SubmitContactResponse, error)
	List(ctx context.Context) ([]dto.ContactSubmissionDTO, error)
	Get(ctx context.Context, id uint) (*dto.ContactSubmissionDTO, error)
	SetRead(ctx context.Context, id uint, isRead bool) error
	Delete(ctx context.Context, id uint) error
	Reply(ctx context.Context, id uint, req dto.ReplyContactRequest) error
	Inbox(ctx context.Context) ([]dto.InboxEntryDTO, error)
}

type ContactsController struct {
	contacts ContactUseCase
	logger   *zap.Logger
}

func NewContactsController(contacts ContactUseCase, logger *zap.Logger) *ContactsController {
	return &ContactsController{contacts: contacts, logger: logger}
}

func (c *ContactsController) Submit(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SubmitContactRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	resp, err := c.contacts.Submit(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, resp)
}

func (c *ContactsController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	subs, err := c.contacts.List(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, subs)
}

func (c *ContactsController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contactIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	sub, err := c.contacts.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, sub)
}

func (c *ContactsController) SetRead(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contactIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.MarkContactReadRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.contacts.SetRead(r.Context(), id, *req.IsRead); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContactsController) Reply(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contactIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.ReplyContactRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.contacts.Reply(r.Context(), id, req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContactsController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contactIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.contacts.Delete(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContactsController) Inbox(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	entries, err := c.contacts.Inbox(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, entries)
}

func (c *ContactsController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func contactIDParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid contact id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return uint(id), nil
}
