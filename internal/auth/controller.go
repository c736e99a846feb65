package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

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

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "email and password are required",
		})
		return
	}

	token, user, err := c.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if ue, ok := apperrors.IsUnauthorizedError(err); ok {
			c.writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":   "UNAUTHORIZED",
				"message": ue.Message,
			})
			return
		}
		c.logger.Error("login failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
