// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	domaincatalog "github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/infrastructure/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Durable key-value storage for the cart and the last order
	kv, cleanup, err := newStorage(cfg)
	if err != nil {
		logg.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	// Product data source
	source, err := newSource(cfg, logg)
	if err != nil {
		logg.Fatalf("Failed to initialize product source: %v", err)
	}

	// Cart store restores persisted items exactly once, before any operation
	store := cart.NewStore(kv, logg)
	orders := order.NewRepository(kv)

	checkoutService := checkout.NewService(
		store,
		orders,
		logg,
		cfg.Checkout.ProcessingDelay,
		cfg.Checkout.ConfirmationRoute,
		func(route string) {
			logg.WithField("route", route).Info("Navigation intent issued")
		},
	)

	// Create and start HTTP server
	server := http.NewServer(cfg, logg, routes.Deps{
		Config:   cfg,
		Source:   source,
		Store:    store,
		Orders:   orders,
		Checkout: checkoutService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("Server shutdown completed")
}

// newStorage selects the KV backend from configuration
func newStorage(cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		store, err := storage.NewRedisStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	default:
		store, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

// newSource selects the product data source from configuration
func newSource(cfg *config.Config, logg *logrus.Logger) (domaincatalog.Source, error) {
	if cfg.Catalog.Provider == "static" {
		return catalog.NewStaticSource()
	}
	return catalog.NewDummyJSONSource(cfg, logg), nil
}
