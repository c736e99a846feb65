package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockroom/internal/auth"
	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"
)

type CreateOrderUseCase interface {
	Create(ctx context.Context, role domain.Role, req dto.CreateOrderRequest) (*domain.Order, error)
}

type TransitionStatusUseCase interface {
	Transition(ctx context.Context, orderID uint, requested domain.OrderStatus, role domain.Role) (*domain.Order, error)
}

type ListOrdersUseCase interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type DeleteOrderUseCase interface {
	Delete(ctx context.Context, orderID uint, role domain.Role) error
}

type Controller struct {
	createUC     CreateOrderUseCase
	transitionUC TransitionStatusUseCase
	listUC       ListOrdersUseCase
	deleteUC     DeleteOrderUseCase
	logger       *zap.Logger
}

func NewController(
	createUC CreateOrderUseCase,
	transitionUC TransitionStatusUseCase,
	listUC ListOrdersUseCase,
	deleteUC DeleteOrderUseCase,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		logger:       logger,
	}
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if len(req.Items) > 100 {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items exceeds maximum of 100",
		})
		return
	}

	order, err := c.createUC.Create(r.Context(), role, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.listUC.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}

	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		c.writeValidationError(w, "invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Status == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is required",
		})
		return
	}

	order, err := c.transitionUC.Transition(r.Context(), uint(orderID), domain.OrderStatus(req.Status), role)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *Controller) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.RoleFrom(r.Context())
	if !ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return
	}

	orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		c.writeValidationError(w, "invalid order id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.deleteUC.Delete(r.Context(), uint(orderID), role); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "order removed"})
}

func (c *Controller) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
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

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, "CONFLICT", ce.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return dto.OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Items:        items,
		TotalAmount:  order.TotalAmount,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
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
