package user

import (
	"database/sql"

	"go.uber.org/zap"

	"stockroom/internal/user/controller"
	"stockroom/internal/user/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLUserRepository(db)
	return controller.NewController(repo, logger)
}
