package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type mockProductRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]domain.Product, error)
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	return m.FindByIDsFunc(ctx, ids)
}

type mockOrderCreator struct {
	CreateFunc func(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error)
}

func (m *mockOrderCreator) Create(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error) {
	return m.CreateFunc(ctx, customerName, items)
}

type mockOrderReader struct {
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Order, error)
}

func (m *mockOrderReader) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func catalogWith(products ...domain.Product) *mockProductRepository {
	return &mockProductRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]domain.Product, error) {
			return products, nil
		},
	}
}

func TestCreateOrder_SnapshotsAndTotal(t *testing.T) {
	ctx := context.Background()

	products := catalogWith(domain.Product{ID: 1, Name: "Mouse", Price: 2500, Stock: 5, MinStock: 10})

	var created []domain.OrderItem
	creator := &mockOrderCreator{
		CreateFunc: func(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error) {
			if customerName != "Alice" {
				t.Errorf("expected customer Alice, got %s", customerName)
			}
			created = items
			return 10, nil
		},
	}

	reader := &mockOrderReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{
				ID:           id,
				CustomerName: "Alice",
				Items:        created,
				TotalAmount:  domain.TotalOf(created),
				Status:       domain.OrderStatusPending,
			}, nil
		},
	}

	uc := NewCreateOrderUseCase(products, creator, reader, zap.NewNop())

	order, err := uc.Create(ctx, domain.RoleStaff, dto.CreateOrderRequest{
		CustomerName: "Alice",
		Items:        []dto.CreateOrderItem{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected Pending, got %s", order.Status)
	}
	if order.TotalAmount != 5000 {
		t.Errorf("expected total 5000, got %d", order.TotalAmount)
	}
	if len(created) != 1 {
		t.Fatalf("expected one item, got %d", len(created))
	}
	// Name and price come from the catalog at creation time.
	if created[0].Name != "Mouse" || created[0].Price != 2500 {
		t.Errorf("expected catalog snapshot, got %+v", created[0])
	}
}

func TestCreateOrder_EmptyCustomerName(t *testing.T) {
	ctx := context.Background()

	uc := NewCreateOrderUseCase(catalogWith(), &mockOrderCreator{}, &mockOrderReader{}, zap.NewNop())

	_, err := uc.Create(ctx, domain.RoleStaff, dto.CreateOrderRequest{
		CustomerName: "",
		Items:        []dto.CreateOrderItem{{ProductID: 1, Quantity: 1}},
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	ctx := context.Background()

	uc := NewCreateOrderUseCase(catalogWith(), &mockOrderCreator{}, &mockOrderReader{}, zap.NewNop())

	_, err := uc.Create(ctx, domain.RoleManager, dto.CreateOrderRequest{CustomerName: "Alice"})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateOrder_NonPositiveQuantity(t *testing.T) {
	ctx := context.Background()

	uc := NewCreateOrderUseCase(catalogWith(), &mockOrderCreator{}, &mockOrderReader{}, zap.NewNop())

	_, err := uc.Create(ctx, domain.RoleStaff, dto.CreateOrderRequest{
		CustomerName: "Alice",
		Items:        []dto.CreateOrderItem{{ProductID: 1, Quantity: 0}},
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	ctx := context.Background()

	products := catalogWith(domain.Product{ID: 1, Name: "Mouse", Price: 2500})

	creator := &mockOrderCreator{
		CreateFunc: func(ctx context.Context, customerName string, items []domain.OrderItem) (uint, error) {
			t.Fatal("no order may be created with unknown products")
			return 0, nil
		},
	}

	uc := NewCreateOrderUseCase(products, creator, &mockOrderReader{}, zap.NewNop())

	_, err := uc.Create(ctx, domain.RoleStaff, dto.CreateOrderRequest{
		CustomerName: "Alice",
		Items: []dto.CreateOrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	})

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Details) != 1 {
		t.Errorf("expected one detail for the unknown product, got %d", len(ve.Details))
	}
}

func TestCreateOrder_InvalidRole(t *testing.T) {
	ctx := context.Background()

	uc := NewCreateOrderUseCase(catalogWith(), &mockOrderCreator{}, &mockOrderReader{}, zap.NewNop())

	_, err := uc.Create(ctx, domain.Role("ghost"), dto.CreateOrderRequest{
		CustomerName: "Alice",
		Items:        []dto.CreateOrderItem{{ProductID: 1, Quantity: 1}},
	})

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}
