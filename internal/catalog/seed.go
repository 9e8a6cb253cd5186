package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dailyneed/storefront-backend/pkg/config"
	"github.com/dailyneed/storefront-backend/pkg/db"
	"github.com/dailyneed/storefront-backend/pkg/db/models"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

//go:embed products_seed.json
var seedProductsJSON []byte

type seedProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Thumbnail          string  `json:"thumbnail"`
}

// Seed migrates the products table and inserts the embedded fixture when the
// table is empty. The fixture order becomes the catalog's relevance order.
func Seed(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	if err := client.DB().WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("migrating products table: %w", err)
	}

	repo := NewRepository(client.DB())
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		if logg != nil {
			logg.Info(logg.WithField(ctx, "products", count), "catalog already seeded, skipping")
		}
		return nil
	}

	var fixture []seedProduct
	if err := json.Unmarshal(seedProductsJSON, &fixture); err != nil {
		return fmt.Errorf("decoding catalog fixture: %w", err)
	}

	rows := make([]models.Product, 0, len(fixture))
	for i, p := range fixture {
		rows = append(rows, models.Product{
			ID:                 p.ID,
			Position:           i,
			Title:              p.Title,
			Category:           p.Category,
			Brand:              p.Brand,
			Price:              p.Price,
			DiscountPercentage: p.DiscountPercentage,
			Rating:             p.Rating,
			Thumbnail:          p.Thumbnail,
		})
	}

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		return NewRepository(tx).InsertBatch(ctx, rows)
	})
	if err != nil {
		// A concurrently booting instance may have seeded first.
		if db.IsUniqueViolation(err, "") {
			return nil
		}
		return fmt.Errorf("inserting catalog fixture: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "products", len(rows)), "catalog seeded")
	}
	return nil
}

// MaybeSeedDev seeds automatically when running in dev mode with the seed
// flag enabled.
func MaybeSeedDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.SeedOnBoot {
		return nil
	}
	return Seed(ctx, client, logg)
}
