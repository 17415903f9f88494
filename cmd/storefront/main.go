package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pizzadelight/storefront/internal/app"
	"github.com/pizzadelight/storefront/internal/catalog"
	"github.com/pizzadelight/storefront/pkg/blob"
	"github.com/pizzadelight/storefront/pkg/config"
	"github.com/pizzadelight/storefront/pkg/logger"
	"github.com/pizzadelight/storefront/pkg/metrics"
	"github.com/pizzadelight/storefront/pkg/redis"
	"github.com/pizzadelight/storefront/pkg/types"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	store, closeStore, err := openStore(ctx, cfg, logg)
	requireResource(ctx, logg, "blob store", err)
	defer func() {
		if err := closeStore(); err != nil {
			logg.Error(ctx, "failed to close blob store", err)
		}
	}()

	application, err := app.New(app.Params{
		Config:  cfg,
		Store:   store,
		Catalog: catalog.SeedRepository(),
		Logger:  logg,
		Metrics: storeMetrics,
	})
	requireResource(ctx, logg, "app", err)

	if err := application.Hydrate(ctx); err != nil {
		logg.Error(ctx, "partial hydration", err)
	}

	requireResource(ctx, logg, "seed users", application.Auth.SeedUsers(ctx, cfg.Seed))

	runCtx := logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Driver,
	})
	logg.Info(runCtx, "storefront ready")

	snapshot := application.Analytics()
	logg.Info(logg.WithFields(runCtx, map[string]any{
		"orders":       snapshot.TotalOrders,
		"revenue":      types.FormatAmount(snapshot.TotalRevenue),
		"week_revenue": types.FormatAmount(snapshot.RevenueThisWeek),
	}), "ledger snapshot")
}

// openStore picks the blob store backend from config. The returned
// closer is a no-op for the memory driver.
func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (blob.Store, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, err
		}
		store, err := blob.NewRedisStore(client)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, client.Close, nil
	case config.StorageDriverSQLite:
		store, err := blob.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return blob.NewMemoryStore(), func() error { return nil }, nil
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
