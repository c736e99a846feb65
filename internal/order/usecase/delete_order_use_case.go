package usecase

import (
	"context"

	"go.uber.org/zap"

	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"
)

type OrderDeleter interface {
	Delete(ctx context.Context, id uint) error
}

type DeleteOrderUseCase struct {
	orders OrderDeleter
	logger *zap.Logger
}

func NewDeleteOrderUseCase(orders OrderDeleter, logger *zap.Logger) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orders: orders,
		logger: logger,
	}
}

// Delete removes an order unconditionally. Admin only; no state-machine
// constraint applies.
func (uc *DeleteOrderUseCase) Delete(ctx context.Context, orderID uint, role domain.Role) error {
	if role != domain.RoleAdmin {
		return apperrors.NewForbiddenError("access denied")
	}

	if err := uc.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	uc.logger.Info("order deleted", zap.Uint("orderId", orderID))
	return nil
}
