package analytics

import (
	"database/sql"

	"go.uber.org/zap"

	"orientalgroup/internal/analytics/controller"
	"orientalgroup/internal/analytics/repository"
	"orientalgroup/internal/analytics/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.AnalyticsController {
	repo := repository.NewMySQLAnalyticsRepository(db)
	uc := usecase.NewAnalyticsUseCase(repo)
	return controller.NewAnalyticsController(uc, logger)
}
