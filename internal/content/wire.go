package content

import (
	"database/sql"

	"go.uber.org/zap"

	"orientalgroup/internal/content/controller"
	"orientalgroup/internal/content/repository"
	"orientalgroup/internal/content/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.ContentController {
	services := repository.NewMySQLServiceRepository(db)
	partners := repository.NewMySQLPartnerRepository(db)
	mission := repository.NewMySQLMissionPointRepository(db)

	uc := usecase.NewContentUseCase(services, partners, mission, logger)
	return controller.NewContentController(uc, logger)
}
