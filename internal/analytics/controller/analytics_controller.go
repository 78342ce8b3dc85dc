package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orientalgroup/internal/dto"
	"orientalgroup/internal/httpx"
)

type AnalyticsUseCase interface {
	Dashboard(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type AnalyticsController struct {
	analytics AnalyticsUseCase
	logger    *zap.Logger
}

func NewAnalyticsController(analytics AnalyticsUseCase, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{analytics: analytics, logger: logger}
}

func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	resp, err := c.analytics.Dashboard(r.Context())
	if err != nil {
		httpx.WriteError(logger, w, err)
		return
	}

	httpx.WriteJSON(logger, w, http.StatusOK, resp)
}
