package product

import (
	"database/sql"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*Controller, *MySQLProductRepository, *Service) {
	repo := NewMySQLProductRepository(db)
	svc := NewService(repo, logger)
	return NewController(svc, logger), repo, svc
}
