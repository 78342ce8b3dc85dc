package user

import (
	"database/sql"

	"go.uber.org/zap"

	"orientalgroup/internal/auth"
	"orientalgroup/internal/user/controller"
	"orientalgroup/internal/user/repository"
	"orientalgroup/internal/user/usecase"
)

type Module struct {
	Auth  *controller.AuthController
	Users *controller.UsersController
}

func NewModule(db *sql.DB, tokens *auth.TokenManager, logger *zap.Logger) *Module {
	repo := repository.NewMySQLUserRepository(db)

	authUC := usecase.NewAuthUseCase(repo, tokens, logger)
	manageUC := usecase.NewManageUsersUseCase(repo, logger)

	return &Module{
		Auth:  controller.NewAuthController(authUC, logger),
		Users: controller.NewUsersController(manageUC, logger),
	}
}
