package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/auth"
	"github.com/AshleyKendi786/Delivery-App/internal/catalog"
	"github.com/AshleyKendi786/Delivery-App/internal/config"
	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/infrastructure/database"
	"github.com/AshleyKendi786/Delivery-App/internal/infrastructure/logger"
	"github.com/AshleyKendi786/Delivery-App/internal/order"
	"github.com/AshleyKendi786/Delivery-App/internal/server"
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

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	zapLogger.Info("database connected", zap.String("driver", cfg.Database.Driver))

	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}

	authCtrl, tokens := auth.NewModule(db, cfg.Auth, zapLogger)
	orderCtrl := order.NewModule(db, zapLogger)
	catalogCtrl, products := catalog.NewModule(db, zapLogger)

	if err := products.Seed(context.Background(), defaultProducts()); err != nil {
		zapLogger.Warn("seeding products", zap.Error(err))
	}

	router := server.NewRouter(authCtrl, orderCtrl, catalogCtrl, tokens, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	if err := srv.Shutdown(context.Background()); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "Book", Price: 25},
		{Name: "Groceries", Price: 40},
		{Name: "Flowers", Price: 15},
	}
}
