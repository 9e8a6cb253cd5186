package catalog

import (
	"context"

	"github.com/dailyneed/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and seeds the products table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository on the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListOrdered returns every product row in catalog (seed) order.
func (r *Repository) ListOrdered(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of seeded products.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InsertBatch writes the provided rows in one statement.
func (r *Repository) InsertBatch(ctx context.Context, rows []models.Product) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
