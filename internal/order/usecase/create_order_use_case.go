package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error)
}

type OrderCreator interface {
	Create(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type CreateOrderUseCase struct {
	products ProductRepository
	creator  OrderCreator
	orders   OrderReader
	logger   *zap.Logger
}

func NewCreateOrderUseCase(
	products ProductRepository,
	creator OrderCreator,
	orders OrderReader,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		products: products,
		creator:  creator,
		orders:   orders,
		logger:   logger,
	}
}

// Create validates the request, captures name/price snapshots from the
// current catalog, and persists a Pending order. The total is computed
// server side from the snapshots, never taken from the caller.
func (uc *CreateOrderUseCase) Create(ctx context.Context, role domain.Role, req dto.CreateOrderRequest) (*domain.Order, error) {
	if !role.Valid() {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var details []apperrors.ValidationDetail
	for i, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: fmt.Sprintf("product %d not found", item.ProductID),
			})
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("unknown products", details...)
	}

	orderID, err := uc.creator.Create(ctx, req.CustomerName, items)
	if err != nil {
		return nil, err
	}

	return uc.orders.FindByID(ctx, orderID)
}

func validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for i, item := range req.Items {
		if item.ProductID == 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: "productId must be a positive integer",
			})
		}
		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
