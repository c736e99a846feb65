package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"stockroom/internal/domain"
)

type contextKey string

const claimsKey contextKey = "authClaims"

type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth verifies the Authorization header and stores the resolved
// claims in the request context. Handlers read the role with RoleFrom and
// pass it explicitly into use cases; no handler re-checks the token.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.writeUnauthorized(w, "no token, authorization denied")
			return
		}

		// Accept both a bare token and the Bearer scheme.
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.tokens.Validate(token)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			m.writeUnauthorized(w, "token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the verified claims stored by RequireAuth.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RoleFrom returns the caller's resolved role.
func RoleFrom(ctx context.Context) (domain.Role, bool) {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}

func (m *Middleware) writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "UNAUTHORIZED", "message": message}); err != nil {
		m.logger.Error("failed to encode response", zap.Error(err))
	}
}
