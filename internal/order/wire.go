package order

import (
	"database/sql"

	"go.uber.org/zap"

	"stockroom/internal/order/controller"
	"stockroom/internal/order/repository"
	"stockroom/internal/order/service"
	"stockroom/internal/order/usecase"
	"stockroom/internal/product"
)

func NewModule(db *sql.DB, products *product.MySQLProductRepository, logger *zap.Logger) *controller.Controller {
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderItemRepo := repository.NewMySQLOrderItemRepository(db)

	orderSvc := service.NewOrderService(db, orderRepo, orderItemRepo, logger)

	createUC := usecase.NewCreateOrderUseCase(products, orderSvc, orderRepo, logger)
	transitionUC := usecase.NewTransitionStatusUseCase(orderRepo, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo)
	deleteUC := usecase.NewDeleteOrderUseCase(orderRepo, logger)

	return controller.NewController(createUC, transitionUC, listUC, deleteUC, logger)
}
