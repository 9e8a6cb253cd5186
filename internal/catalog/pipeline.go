package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Evaluate runs the query pipeline: filter the catalog with the search term
// and filter state, then order the survivors by the sort key. Pure and
// deterministic, so it is safe to re-run on every keystroke or toggle.
//
// Ties keep their relative catalog order: sorting is stable, and relevance
// applies no reordering at all.
func Evaluate(c *Catalog, search string, filters FilterState, key SortKey) []Product {
	if c == nil {
		return nil
	}

	matched := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if filters.allows(p, search) {
			matched = append(matched, p)
		}
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price < matched[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price > matched[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	}

	return matched
}

// DiscountedPrice derives the display price after applying the product's
// discount percentage, rounded to two decimal places. The stored price is
// never modified.
func DiscountedPrice(p Product) float64 {
	price := decimal.NewFromFloat(p.Price)
	cut := price.
		Mul(decimal.NewFromFloat(p.DiscountPercentage)).
		Div(decimal.NewFromInt(100))
	return price.Sub(cut).Round(2).InexactFloat64()
}
