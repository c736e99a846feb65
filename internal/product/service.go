package product

import (
	"context"

	"go.uber.org/zap"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (uint, error)
	Update(ctx context.Context, p domain.Product) error
	UpdateStock(ctx context.Context, id uint, stock int) error
	Delete(ctx context.Context, id uint) error
}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

// LowStock is a read-side projection over the current catalog; it never
// gates an order transition.
func (s *Service) LowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var low []domain.Product
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (s *Service) Create(ctx context.Context, role domain.Role, req dto.CreateProductRequest) (*domain.Product, error) {
	if role != domain.RoleAdmin && role != domain.RoleManager {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	if err := validateCreateProduct(req); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.Uint("productId", id), zap.String("name", req.Name))

	return s.repo.FindByID(ctx, id)
}

// Update merges the non-nil fields of the request into the stored product.
// Order item snapshots are untouched by any catalog edit.
func (s *Service) Update(ctx context.Context, role domain.Role, id uint, req dto.UpdateProductRequest) (*domain.Product, error) {
	if role != domain.RoleAdmin && role != domain.RoleManager {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := validateProduct(*product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *product); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// UpdateStock is the staff stock correction, the only stock mutation in
// the system. The transition engine never decrements stock.
func (s *Service) UpdateStock(ctx context.Context, role domain.Role, id uint, req dto.UpdateStockRequest) (*domain.Product, error) {
	if !role.Valid() {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	if req.Stock == nil {
		return nil, apperrors.NewValidationError("stock value required", apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock is required",
		})
	}
	if *req.Stock < 0 {
		return nil, apperrors.NewValidationError("stock must be non-negative", apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock must be non-negative",
		})
	}

	if err := s.repo.UpdateStock(ctx, id, *req.Stock); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, role domain.Role, id uint) error {
	if role != domain.RoleAdmin {
		return apperrors.NewForbiddenError("access denied")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.Uint("productId", id))
	return nil
}

func validateCreateProduct(req dto.CreateProductRequest) error {
	return validateProduct(domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
	})
}

func validateProduct(p domain.Product) error {
	var details []apperrors.ValidationDetail

	if p.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if p.Price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must be non-negative"})
	}
	if p.Stock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "stock", Message: "stock must be non-negative"})
	}
	if p.MinStock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "minStock", Message: "minStock must be non-negative"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
