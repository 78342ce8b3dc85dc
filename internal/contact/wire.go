package contact

import (
	"database/sql"

	"go.uber.org/zap"

	"orientalgroup/internal/contact/controller"
	"orientalgroup/internal/contact/repository"
	"orientalgroup/internal/contact/usecase"
	"orientalgroup/internal/infrastructure/mailer"
)

func NewModule(db *sql.DB, mail mailer.Sender, logger *zap.Logger) *controller.ContactsController {
	repo := repository.NewMySQLContactRepository(db)
	uc := usecase.NewContactUseCase(repo, mail, logger)
	return controller.NewContactsController(uc, logger)
}
