package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dailyneed/storefront-backend/api/responses"
	"github.com/dailyneed/storefront-backend/api/validators"
	"github.com/dailyneed/storefront-backend/internal/catalog"
	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
	"github.com/dailyneed/storefront-backend/pkg/logger"
)

// CatalogBrowse runs the filter/search/sort pipeline over the catalog.
//
// Query parameters: q (search text, matched literally), category and brand
// (repeatable), min_rating, price_min, price_max, sort (relevance,
// price-asc, price-desc, rating-desc).
func CatalogBrowse(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minRating, err := validators.ParseQueryFloat(r, "min_rating")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceMin, err := validators.ParseQueryFloat(r, "price_min")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceMax, err := validators.ParseQueryFloat(r, "price_max")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.BrowseInput{
			Search:     r.URL.Query().Get("q"),
			Categories: validators.ParseQueryList(r, "category"),
			Brands:     validators.ParseQueryList(r, "brand"),
			PriceMin:   priceMin,
			PriceMax:   priceMax,
			Sort:       r.URL.Query().Get("sort"),
		}
		if minRating != nil {
			input.MinRating = *minRating
		}

		result, err := svc.Browse(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CatalogFacets lists the filterable categories and brands.
func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		facets, err := svc.Facets(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, facets)
	}
}

// CatalogGet returns a single product.
func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		product, err := svc.Get(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func parseProductID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	productID, err := strconv.Atoi(raw)
	if err != nil || productID < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer")
	}
	return productID, nil
}
