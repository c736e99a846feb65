package product

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type mockRepository struct {
	ListAllFunc     func(ctx context.Context) ([]domain.Product, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.Product, error)
	InsertFunc      func(ctx context.Context, p domain.Product) (uint, error)
	UpdateFunc      func(ctx context.Context, p domain.Product) error
	UpdateStockFunc func(ctx context.Context, id uint, stock int) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return m.ListAllFunc(ctx)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) Insert(ctx context.Context, p domain.Product) (uint, error) {
	return m.InsertFunc(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, p domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockRepository) UpdateStock(ctx context.Context, id uint, stock int) error {
	return m.UpdateStockFunc(ctx, id, stock)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestService_LowStock(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		ListAllFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: 1, Name: "Mouse", Stock: 5, MinStock: 10},
				{ID: 2, Name: "Keyboard", Stock: 30, MinStock: 10},
				{ID: 3, Name: "Cable", Stock: 10, MinStock: 10},
			}, nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	low, err := svc.LowStock(ctx)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	// Stock equal to minStock is not low.
	if len(low) != 1 {
		t.Fatalf("expected one low-stock product, got %d", len(low))
	}
	if low[0].Name != "Mouse" {
		t.Errorf("expected Mouse, got %s", low[0].Name)
	}
}

func TestService_Create_StaffForbidden(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) (uint, error) {
			t.Fatal("staff must not reach the repository")
			return 0, nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(ctx, domain.RoleStaff, dto.CreateProductRequest{Name: "Mouse", Price: 2500})
	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestService_Create_ValidatesFields(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&mockRepository{}, zap.NewNop())

	_, err := svc.Create(ctx, domain.RoleManager, dto.CreateProductRequest{Name: "", Price: -1})

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Details) != 2 {
		t.Errorf("expected details for name and price, got %d", len(ve.Details))
	}
}

func TestService_Update_MergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()

	var updated domain.Product
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			if updated.ID != 0 {
				return &updated, nil
			}
			return &domain.Product{ID: id, Name: "Mouse", Price: 2500, Stock: 5, MinStock: 10}, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.Product) error {
			updated = p
			return nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	_, err := svc.Update(ctx, domain.RoleAdmin, 1, dto.UpdateProductRequest{Price: int64Ptr(2900)})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if updated.Price != 2900 {
		t.Errorf("expected price 2900, got %d", updated.Price)
	}
	if updated.Name != "Mouse" || updated.Stock != 5 || updated.MinStock != 10 {
		t.Errorf("omitted fields must be preserved, got %+v", updated)
	}
}

func TestService_UpdateStock_RequiresValue(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&mockRepository{}, zap.NewNop())

	_, err := svc.UpdateStock(ctx, domain.RoleStaff, 1, dto.UpdateStockRequest{})
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError for missing stock, got %T", err)
	}

	_, err = svc.UpdateStock(ctx, domain.RoleStaff, 1, dto.UpdateStockRequest{Stock: intPtr(-1)})
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError for negative stock, got %T", err)
	}
}

func TestService_UpdateStock_AnyRole(t *testing.T) {
	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleStaff} {
		repo := &mockRepository{
			UpdateStockFunc: func(ctx context.Context, id uint, stock int) error {
				if stock != 7 {
					t.Errorf("expected stock 7, got %d", stock)
				}
				return nil
			},
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Mouse", Stock: 7}, nil
			},
		}

		svc := NewService(repo, zap.NewNop())

		product, err := svc.UpdateStock(ctx, role, 1, dto.UpdateStockRequest{Stock: intPtr(7)})
		if err != nil {
			t.Fatalf("role %s: expected success, got %v", role, err)
		}
		if product.Stock != 7 {
			t.Errorf("role %s: expected stock 7, got %d", role, product.Stock)
		}
	}
}

func TestService_Delete_AdminOnly(t *testing.T) {
	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleStaff} {
		svc := NewService(&mockRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatalf("role %s must not reach the repository", role)
				return nil
			},
		}, zap.NewNop())

		err := svc.Delete(ctx, role, 1)
		if _, ok := apperrors.IsForbiddenError(err); !ok {
			t.Errorf("role %s: expected ForbiddenError, got %T", role, err)
		}
	}

	deleted := false
	svc := NewService(&mockRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}, zap.NewNop())

	if err := svc.Delete(ctx, domain.RoleAdmin, 1); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !deleted {
		t.Errorf("expected the repository delete to be called")
	}
}
