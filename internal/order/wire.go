package order

import (
	"database/sql"

	"go.uber.org/zap"

	contactrepo "orientalgroup/internal/contact/repository"
	"orientalgroup/internal/infrastructure/mysql"
	"orientalgroup/internal/order/controller"
	orderrepo "orientalgroup/internal/order/repository"
	"orientalgroup/internal/order/usecase"
)

func NewModule(db *sql.DB, store *mysql.Store, logger *zap.Logger) *controller.OrdersController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	itemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	contactRepo := contactrepo.NewMySQLContactRepository(db)

	submitUC := usecase.NewSubmitQuoteUseCase(store, orderRepo, itemRepo, contactRepo, logger)
	statusUC := usecase.NewOrderStatusUseCase(orderRepo, logger)
	queryUC := usecase.NewOrderQueryUseCase(orderRepo, itemRepo)

	return controller.NewOrdersController(submitUC, statusUC, queryUC, logger)
}
