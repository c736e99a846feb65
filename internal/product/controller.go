package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stockroom/internal/auth"
	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toProductResponses(products))
}

func (c *Controller) HandleLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.LowStock(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toProductResponses(products))
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	product, err := c.service.Create(r.Context(), role, req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toProductResponse(*product))
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	id, err := c.parseID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	product, err := c.service.Update(r.Context(), role, id, req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductResponse(*product))
}

func (c *Controller) HandleUpdateStock(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	id, err := c.parseID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer")
		return
	}

	var req dto.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	product, err := c.service.UpdateStock(r.Context(), role, id, req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductResponse(*product))
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	id, err := c.parseID(r)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer")
		return
	}

	if err := c.service.Delete(r.Context(), role, id); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "product removed"})
}

func (c *Controller) parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return uint(id), err
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}

	if fe, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", fe.Message)
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func toProductResponses(products []domain.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toProductResponse(p domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: p.Description,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (c *Controller) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{"error": code, "message": message})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
