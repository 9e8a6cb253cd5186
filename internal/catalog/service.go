package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
)

// Service exposes catalog browsing operations.
type Service interface {
	Browse(ctx context.Context, input BrowseInput) (*BrowseResultDTO, error)
	Facets(ctx context.Context) (*FacetsDTO, error)
	Get(ctx context.Context, productID int) (*ProductDTO, error)
}

// ServiceParams wires the dependencies for the catalog service.
type ServiceParams struct {
	Catalog *Catalog
}

// service implements the catalog service over an in-memory catalog snapshot.
type service struct {
	catalog *Catalog
}

// NewService constructs a catalog service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{catalog: params.Catalog}, nil
}

// Browse runs the query pipeline over the catalog and returns the surviving
// products in their final display order.
func (s *service) Browse(ctx context.Context, input BrowseInput) (*BrowseResultDTO, error) {
	key, err := ParseSortKey(input.Sort)
	if err != nil {
		return nil, err
	}

	filters := DefaultFilters()
	filters.Categories = input.Categories
	filters.Brands = input.Brands
	filters.MinRating = input.MinRating
	if input.PriceMin != nil {
		filters.Price.Min = *input.PriceMin
	}
	if input.PriceMax != nil {
		filters.Price.Max = *input.PriceMax
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	matched := Evaluate(s.catalog, input.Search, filters, key)
	products := make([]ProductDTO, 0, len(matched))
	for _, p := range matched {
		products = append(products, NewProductDTO(p))
	}

	return &BrowseResultDTO{
		Products: products,
		Matched:  len(products),
		Total:    s.catalog.Len(),
	}, nil
}

// Facets returns the distinct categories and brands in catalog order, plus
// the price ceiling the default filter window uses.
func (s *service) Facets(ctx context.Context) (*FacetsDTO, error) {
	seenCategory := make(map[string]struct{})
	seenBrand := make(map[string]struct{})
	categories := make([]string, 0)
	brands := make([]string, 0)
	for _, p := range s.catalog.Products() {
		if _, ok := seenCategory[p.Category]; !ok {
			seenCategory[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
		if _, ok := seenBrand[p.Brand]; !ok {
			seenBrand[p.Brand] = struct{}{}
			brands = append(brands, p.Brand)
		}
	}
	return &FacetsDTO{
		Categories:   categories,
		Brands:       brands,
		PriceCeiling: DefaultPriceCeiling,
	}, nil
}

// Get returns a single product by its catalog id.
func (s *service) Get(ctx context.Context, productID int) (*ProductDTO, error) {
	for _, p := range s.catalog.Products() {
		if p.ID == productID {
			dto := NewProductDTO(p)
			return &dto, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
