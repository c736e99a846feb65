package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stockroom/internal/analytics"
	"stockroom/internal/auth"
	"stockroom/internal/config"
	"stockroom/internal/infrastructure/logger"
	"stockroom/internal/infrastructure/mysql"
	"stockroom/internal/order"
	"stockroom/internal/product"
	"stockroom/internal/server"
	"stockroom/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	authCtrl, authMW := auth.NewModule(db, cfg.Auth, zapLogger)
	productCtrl, productRepo, productSvc := product.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, productRepo, zapLogger)
	userCtrl := user.NewModule(db, zapLogger)
	analyticsCtrl := analytics.NewModule(db, productSvc, zapLogger)

	router := server.NewRouter(server.Controllers{
		Auth:      authCtrl,
		Orders:    orderCtrl,
		Products:  productCtrl,
		Users:     userCtrl,
		Analytics: analyticsCtrl,
	}, authMW, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
