package catalog

import (
	"fmt"
	"slices"
	"strings"

	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
)

// DefaultPriceCeiling mirrors the upper bound of the storefront's price
// slider. Products above it are still seedable; the ceiling only shapes the
// default filter window.
const DefaultPriceCeiling = 3000

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64
	Max float64
}

// FilterState captures the active filter configuration. Empty category or
// brand lists mean "no constraint" for that dimension.
type FilterState struct {
	Categories []string
	Brands     []string
	MinRating  float64
	Price      PriceRange
}

// DefaultFilters returns the state a fresh session starts with and the state
// Clear restores.
func DefaultFilters() FilterState {
	return FilterState{
		Price: PriceRange{Min: 0, Max: DefaultPriceCeiling},
	}
}

// Clear resets the filter state to its defaults.
func (f *FilterState) Clear() {
	*f = DefaultFilters()
}

// Validate rejects windows that cannot match anything by construction.
func (f FilterState) Validate() error {
	if f.Price.Min > f.Price.Max {
		return pkgerrors.New(pkgerrors.CodeValidation, "price range min exceeds max").
			WithDetails(map[string]any{"min": f.Price.Min, "max": f.Price.Max})
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "minimum rating must be between 0 and 5")
	}
	return nil
}

// allows reports whether the product passes every active filter dimension.
// The search term is matched literally (no trimming), preserving the
// storefront's original substring behavior.
func (f FilterState) allows(p Product, search string) bool {
	if search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(search)) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if p.Price < f.Price.Min || p.Price > f.Price.Max {
		return false
	}
	return true
}

// SortKey selects the ordering applied after filtering.
type SortKey string

// Wire values match the storefront's sort select options.
const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
)

// ParseSortKey maps a wire value onto a SortKey; empty means relevance.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(value) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortPriceAsc:
		return SortPriceAsc, nil
	case SortPriceDesc:
		return SortPriceDesc, nil
	case SortRatingDesc:
		return SortRatingDesc, nil
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown sort key %q", value))
	}
}
