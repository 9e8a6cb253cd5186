package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dailyneed/storefront-backend/api/routes"
	"github.com/dailyneed/storefront-backend/internal/cart"
	"github.com/dailyneed/storefront-backend/internal/catalog"
	"github.com/dailyneed/storefront-backend/internal/session"
	"github.com/dailyneed/storefront-backend/pkg/config"
	"github.com/dailyneed/storefront-backend/pkg/db"
	"github.com/dailyneed/storefront-backend/pkg/env"
	"github.com/dailyneed/storefront-backend/pkg/instance"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"github.com/dailyneed/storefront-backend/pkg/metrics"
	"github.com/dailyneed/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := catalog.MaybeSeedDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	loaded, err := catalog.Load(context.Background(), catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(context.Background(), "products", loaded.Len()), "catalog loaded")

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogService, err := catalog.NewService(catalog.ServiceParams{Catalog: loaded})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Mirror:   redisClient,
		Products: loaded,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	if err := cartService.Restore(context.Background()); err != nil {
		logg.Warn(logg.WithField(context.Background(), "error", err.Error()), "cart mirror unavailable, starting empty")
	}

	sessionService, err := session.NewService(session.ServiceParams{
		Mirror: redisClient,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}
	if err := sessionService.Restore(context.Background()); err != nil {
		logg.Warn(logg.WithField(context.Background(), "error", err.Error()), "session mirror unavailable, starting logged out")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := env.Get("PORT", cfg.App.Port)
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg,
			dbClient, redisClient,
			httpMetrics, registry,
			catalogService, cartService, sessionService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
