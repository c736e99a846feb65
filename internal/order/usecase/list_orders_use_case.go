package usecase

import (
	"context"

	"stockroom/internal/domain"
)

type OrderLister interface {
	ListAll(ctx context.Context) ([]domain.Order, error)
}

// ListOrdersUseCase returns every order, newest first. Available to any
// authenticated role.
type ListOrdersUseCase struct {
	orders OrderLister
}

func NewListOrdersUseCase(orders OrderLister) *ListOrdersUseCase {
	return &ListOrdersUseCase{orders: orders}
}

func (uc *ListOrdersUseCase) List(ctx context.Context) ([]domain.Order, error) {
	return uc.orders.ListAll(ctx)
}
