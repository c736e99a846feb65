package controller

import (
	"context"
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

type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type Controller struct {
	users  UserRepository
	logger *zap.Logger
}

func NewController(users UserRepository, logger *zap.Logger) *Controller {
	return &Controller{
		users:  users,
		logger: logger,
	}
}

func (c *Controller) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	if !c.requireAdmin(w, r) {
		return
	}

	users, err := c.users.ListAll(r.Context())
	if err != nil {
		c.logger.Error("listing users failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}

	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !c.requireAdmin(w, r) {
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer")
		return
	}

	if err := c.users.Delete(r.Context(), uint(id)); err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeError(w, http.StatusNotFound, "NOT_FOUND", nfe.Message)
			return
		}
		c.logger.Error("deleting user failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "user removed"})
}

func (c *Controller) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role, ok := auth.RoleFrom(r.Context())
	if !ok || role != domain.RoleAdmin {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
		return false
	}
	return true
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
