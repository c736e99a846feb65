package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"stockroom/internal/config"
	userrepo "stockroom/internal/user/repository"
)

func NewModule(db *sql.DB, cfg config.AuthConfig, logger *zap.Logger) (*Controller, *Middleware) {
	tokens := NewTokenManager(cfg)
	users := userrepo.NewMySQLUserRepository(db)
	svc := NewService(users, tokens, logger)

	return NewController(svc, logger), NewMiddleware(tokens, logger)
}
