package analytics

import (
	"database/sql"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, lowStock LowStockLister, logger *zap.Logger) *Controller {
	repo := NewMySQLAnalyticsRepository(db)
	return NewController(repo, lowStock, logger)
}
