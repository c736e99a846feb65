package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stockroom/internal/auth"
	"stockroom/internal/domain"
)

type Repository interface {
	OrdersPerDay(ctx context.Context, since time.Time) ([]DayCount, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
}

type LowStockLister interface {
	LowStock(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	repo     Repository
	lowStock LowStockLister
	logger   *zap.Logger
}

func NewController(repo Repository, lowStock LowStockLister, logger *zap.Logger) *Controller {
	return &Controller{
		repo:     repo,
		lowStock: lowStock,
		logger:   logger,
	}
}

type lowStockEntry struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"minStock"`
}

func (c *Controller) HandleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	if !c.requireRole(w, r, domain.RoleAdmin) {
		return
	}

	ctx := r.Context()
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	ordersPerDay, err := c.repo.OrdersPerDay(ctx, sevenDaysAgo)
	if err != nil {
		c.handleError(w, err)
		return
	}

	topProducts, err := c.repo.TopProducts(ctx, 5)
	if err != nil {
		c.handleError(w, err)
		return
	}

	low, err := c.lowStock.LowStock(ctx)
	if err != nil {
		c.handleError(w, err)
		return
	}

	lowOut := make([]lowStockEntry, 0, len(low))
	for _, p := range low {
		lowOut = append(lowOut, lowStockEntry{ID: p.ID, Name: p.Name, Stock: p.Stock, MinStock: p.MinStock})
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ordersPerDay": ordersPerDay,
		"topProducts":  topProducts,
		"lowStock":     lowOut,
	})
}

func (c *Controller) HandleManagerAnalytics(w http.ResponseWriter, r *http.Request) {
	if !c.requireRole(w, r, domain.RoleManager, domain.RoleAdmin) {
		return
	}

	ctx := r.Context()

	statusDistribution, err := c.repo.StatusDistribution(ctx)
	if err != nil {
		c.handleError(w, err)
		return
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	staffActivity, err := c.repo.OrdersPerDay(ctx, sevenDaysAgo)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"statusDistribution": statusDistribution,
		"staffActivity":      staffActivity,
	})
}

func (c *Controller) requireRole(w http.ResponseWriter, r *http.Request, roles ...domain.Role) bool {
	role, ok := auth.RoleFrom(r.Context())
	if ok {
		for _, allowed := range roles {
			if role == allowed {
				return true
			}
		}
	}
	c.writeJSON(w, http.StatusForbidden, map[string]string{"error": "FORBIDDEN", "message": "access denied"})
	return false
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	c.logger.Error("analytics query failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
