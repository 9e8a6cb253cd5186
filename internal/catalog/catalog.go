package catalog

import (
	"context"

	"github.com/dailyneed/storefront-backend/pkg/db/models"
)

// Product is one catalog entry. Values are copied out of the store at load
// time and never mutated afterwards.
type Product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Rating             float64 `json:"rating"`
	Thumbnail          string  `json:"thumbnail"`
}

// Catalog is the immutable, ordered product sequence the query pipeline
// runs against. The order is the seed order and doubles as relevance order.
type Catalog struct {
	products []Product
}

// NewCatalog copies the provided products into an immutable catalog.
func NewCatalog(products []Product) *Catalog {
	owned := make([]Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Contains reports whether a product with the given id exists.
func (c *Catalog) Contains(productID int) bool {
	if c == nil {
		return false
	}
	for _, p := range c.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Products returns a copy of the catalog sequence in display order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Load reads the full catalog from the products table, in seed order.
func Load(ctx context.Context, repo *Repository) (*Catalog, error) {
	rows, err := repo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromModel(row))
	}
	return &Catalog{products: products}, nil
}

func fromModel(row models.Product) Product {
	return Product{
		ID:                 row.ID,
		Title:              row.Title,
		Category:           row.Category,
		Brand:              row.Brand,
		Price:              row.Price,
		DiscountPercentage: row.DiscountPercentage,
		Rating:             row.Rating,
		Thumbnail:          row.Thumbnail,
	}
}
