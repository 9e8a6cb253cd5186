package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/dailyneed/storefront-backend/internal/catalog"
	"github.com/dailyneed/storefront-backend/pkg/config"
	"github.com/dailyneed/storefront-backend/pkg/db"
	"github.com/dailyneed/storefront-backend/pkg/logger"
)

// Seeds the products table with the embedded catalog fixture. Safe to run
// repeatedly; an already-seeded table is left untouched.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
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

	if err := catalog.Seed(context.Background(), dbClient, logg); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	logg.Info(context.Background(), "seed complete")
}
