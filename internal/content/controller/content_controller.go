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

type ContentUseCase interface {
	ListServices(ctx context.Context) ([]dto.SiteServiceDTO, error)
	CreateService(ctx context.Context, req dto.SaveSiteServiceRequest) (int, error)
	UpdateService(ctx context.Context, id int, req dto.SaveSiteServiceRequest) error
	DeleteService(ctx context.Context, id int) error

	ListPartners(ctx context.Context) ([]dto.PartnerDTO, error)
	CreatePartner(ctx context.Context, req dto.SavePartnerRequest) (int, error)
	UpdatePartner(ctx context.Context, id int, req dto.SavePartnerRequest) error
	DeletePartner(ctx context.Context, id int) error

	ListMissionPoints(ctx context.Context) ([]dto.MissionPointDTO, error)
	CreateMissionPoint(ctx context.Context, req dto.SaveMissionPointRequest) (int, error)
	UpdateMissionPoint(ctx context.Context, id int, req dto.SaveMissionPointRequest) error
	DeleteMissionPoint(ctx context.Context, id int) error
}

type ContentController struct {
	content ContentUseCase
	logger  *zap.Logger
}

func NewContentController(content ContentUseCase, logger *zap.Logger) *ContentController {
	return &ContentController{content: content, logger: logger}
}

func (c *ContentController) ListServices(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	services, err := c.content.ListServices(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, services)
}

func (c *ContentController) CreateService(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SaveSiteServiceRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	id, err := c.content.CreateService(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, map[string]int{"id": id})
}

func (c *ContentController) UpdateService(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.SaveSiteServiceRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.UpdateService(r.Context(), id, req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) DeleteService(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.DeleteService(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) ListPartners(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	partners, err := c.content.ListPartners(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, partners)
}

func (c *ContentController) CreatePartner(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SavePartnerRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	id, err := c.content.CreatePartner(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, map[string]int{"id": id})
}

func (c *ContentController) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.SavePartnerRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.UpdatePartner(r.Context(), id, req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) DeletePartner(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.DeletePartner(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) ListMissionPoints(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	points, err := c.content.ListMissionPoints(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, points)
}

func (c *ContentController) CreateMissionPoint(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.SaveMissionPointRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	id, err := c.content.CreateMissionPoint(r.Context(), req)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusCreated, map[string]int{"id": id})
}

func (c *ContentController) UpdateMissionPoint(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	var req dto.SaveMissionPointRequest
	if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.UpdateMissionPoint(r.Context(), id, req); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) DeleteMissionPoint(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, err := contentIDParam(r)
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	if err := c.content.DeleteMissionPoint(r.Context(), id); err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ContentController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func contentIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}
