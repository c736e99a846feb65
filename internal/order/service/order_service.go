package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"stockroom/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

// OrderService owns the creation transaction: the order row and its item
// snapshots commit together or not at all.
type OrderService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

// Create persists a new Pending order with the supplied item snapshots and
// returns its id. The total is recomputed here from the snapshots.
func (s *OrderService) Create(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	order := domain.Order{
		CustomerName: customerName,
		TotalAmount:  domain.TotalOf(items),
		Status:       domain.OrderStatusPending,
	}

	orderID, err := s.orderRepo.Insert(ctx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, item := range items {
		item.OrderID = orderID
		if _, err := s.orderItemRepo.Insert(ctx, tx, item); err != nil {
			s.logger.Error("failed to insert order item", zap.Uint("orderId", orderID), zap.Uint("productId", item.ProductID), zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("order created", zap.Uint("orderId", orderID), zap.Int("itemCount", len(items)), zap.Int64("totalAmount", order.TotalAmount))

	return orderID, nil
}
