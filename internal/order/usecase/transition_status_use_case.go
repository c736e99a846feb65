package usecase

import (
	"context"

	"go.uber.org/zap"

	"stockroom/internal/domain"
)

type TransitionOrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, newStatus, expectedCurrent domain.OrderStatus) error
}

// TransitionStatusUseCase is the order transition engine: it loads the
// current status, checks the role matrix, and commits the change with a
// conditional write so that two racing requests for the same order cannot
// both succeed.
type TransitionStatusUseCase struct {
	orders TransitionOrderRepository
	logger *zap.Logger
}

func NewTransitionStatusUseCase(orders TransitionOrderRepository, logger *zap.Logger) *TransitionStatusUseCase {
	return &TransitionStatusUseCase{
		orders: orders,
		logger: logger,
	}
}

func (uc *TransitionStatusUseCase) Transition(ctx context.Context, orderID uint, requested domain.OrderStatus, role domain.Role) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeTransition(role, order.Status, requested); err != nil {
		uc.logger.Warn("transition rejected",
			zap.Uint("orderId", orderID),
			zap.String("role", string(role)),
			zap.String("from", string(order.Status)),
			zap.String("to", string(requested)),
			zap.String("reason", err.Error()),
		)
		return nil, err
	}

	// Conditional on the status we validated against; a lost race surfaces
	// as ConflictError and nothing is mutated.
	if err := uc.orders.UpdateStatus(ctx, orderID, requested, order.Status); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("role", string(role)),
		zap.String("from", string(order.Status)),
		zap.String("to", string(requested)),
	)

	order.Status = requested
	return order, nil
}
