package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/trahman/smartshop/internal"
	"github.com/trahman/smartshop/internal/catalog"
	"github.com/trahman/smartshop/internal/coupon"
	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/handler/storefront"
	"github.com/trahman/smartshop/internal/kv"
	"github.com/trahman/smartshop/internal/middleware"
	"github.com/trahman/smartshop/internal/pricing"
	"github.com/trahman/smartshop/internal/router"
	"github.com/trahman/smartshop/internal/routes"
	"github.com/trahman/smartshop/internal/service"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Run migrations when balances live in postgres
	if cfg.Store.Provider == "postgres" {
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.Store.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(sqlDB); err != nil {
			sqlDB.Close()
			return fmt.Errorf("migration failed: %w", err)
		}
		sqlDB.Close()
		logger.Info("Database migrations completed successfully")
	}

	// Initialize the balance store
	store, err := kv.NewStore(ctx, kv.Config{
		Provider:    cfg.Store.Provider,
		FilePath:    cfg.Store.FilePath,
		DatabaseURL: cfg.Store.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize balance store: %w", err)
	}
	logger.Info("Balance store initialized", "provider", cfg.Store.Provider)

	// Load the product catalog
	products, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}
	cat := catalog.NewMemoryCatalog(products)
	logger.Info("Product catalog loaded", "products", len(products))

	// Initialize the session registry
	registry := service.NewRegistry(service.RegistryConfig{
		Catalog: cat,
		Store:   store,
		Fees: pricing.Fees{
			DeliveryCharge: cfg.Shop.DeliveryCharge,
			ShippingCost:   cfg.Shop.ShippingCost,
		},
		Rules:          coupon.DefaultRules(),
		OpeningBalance: cfg.Shop.OpeningBalance,
		TopUpAmount:    cfg.Shop.TopUpAmount,
	})

	// Initialize middleware and handlers
	metrics := middleware.NewMetrics("smartshop")
	storefrontHandler := storefront.New(registry, cat, logger, cfg.Env == "prod")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	routes.RegisterStorefrontRoutes(r, routes.StorefrontDeps{
		Storefront:     storefrontHandler,
		MetricsHandler: metrics.Handler(),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// loadCatalog fetches the product feed, falling back to the local seed
// file when the feed is unreachable.
func loadCatalog(ctx context.Context, cfg *internal.Config, logger *slog.Logger) ([]domain.Product, error) {
	client := catalog.NewClient(cfg.Catalog.URL, 10*time.Second)

	products, err := client.Fetch(ctx)
	if err == nil {
		return products, nil
	}

	if cfg.Catalog.SeedPath == "" {
		return nil, err
	}

	logger.Warn("Product feed unreachable, loading seed file",
		"url", cfg.Catalog.URL,
		"seed_path", cfg.Catalog.SeedPath,
		"error", err,
	)
	return catalog.LoadSeedFile(cfg.Catalog.SeedPath)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
