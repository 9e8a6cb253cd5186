package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() *Catalog {
	return NewCatalog([]Product{
		{ID: 1, Title: "Wireless Mouse", Category: "electronics", Brand: "Logi", Price: 100, DiscountPercentage: 10, Rating: 4.5},
		{ID: 2, Title: "Mechanical Keyboard", Category: "electronics", Brand: "Keychron", Price: 80, DiscountPercentage: 5, Rating: 3.9},
		{ID: 3, Title: "Desk Lamp", Category: "home", Brand: "Lumen", Price: 45, DiscountPercentage: 0, Rating: 4.1},
		{ID: 4, Title: "Mouse Pad XL", Category: "electronics", Brand: "Logi", Price: 25, DiscountPercentage: 12.5, Rating: 3.2},
	})
}

func TestEvaluateDefaultsAreIdentity(t *testing.T) {
	c := fixtureCatalog()

	got := Evaluate(c, "", DefaultFilters(), SortRelevance)

	require.Len(t, got, c.Len())
	assert.Equal(t, c.Products(), got)
}

func TestEvaluateFilterDimensions(t *testing.T) {
	c := fixtureCatalog()

	t.Run("search is a case-insensitive substring on title", func(t *testing.T) {
		got := Evaluate(c, "mouse", DefaultFilters(), SortRelevance)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 4, got[1].ID)
	})

	t.Run("search term is matched literally, whitespace included", func(t *testing.T) {
		got := Evaluate(c, " mouse", DefaultFilters(), SortRelevance)
		assert.Empty(t, got)
	})

	t.Run("category set restricts matches", func(t *testing.T) {
		filters := DefaultFilters()
		filters.Categories = []string{"home"}
		got := Evaluate(c, "", filters, SortRelevance)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("brand set restricts matches", func(t *testing.T) {
		filters := DefaultFilters()
		filters.Brands = []string{"Logi"}
		got := Evaluate(c, "", filters, SortRelevance)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 4, got[1].ID)
	})

	t.Run("minimum rating is inclusive", func(t *testing.T) {
		filters := DefaultFilters()
		filters.MinRating = 4.1
		got := Evaluate(c, "", filters, SortRelevance)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("price window is inclusive at both ends", func(t *testing.T) {
		filters := DefaultFilters()
		filters.Price = PriceRange{Min: 25, Max: 80}
		got := Evaluate(c, "", filters, SortRelevance)
		require.Len(t, got, 3)
		assert.Equal(t, []int{2, 3, 4}, ids(got))
	})

	t.Run("dimensions conjoin", func(t *testing.T) {
		filters := DefaultFilters()
		filters.Brands = []string{"Logi"}
		filters.MinRating = 4
		got := Evaluate(c, "mouse", filters, SortRelevance)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})
}

func TestEvaluateSortOrders(t *testing.T) {
	c := fixtureCatalog()

	t.Run("price ascending", func(t *testing.T) {
		got := Evaluate(c, "", DefaultFilters(), SortPriceAsc)
		assert.Equal(t, []int{4, 3, 2, 1}, ids(got))
	})

	t.Run("price descending", func(t *testing.T) {
		got := Evaluate(c, "", DefaultFilters(), SortPriceDesc)
		assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
	})

	t.Run("rating descending", func(t *testing.T) {
		got := Evaluate(c, "", DefaultFilters(), SortRatingDesc)
		assert.Equal(t, []int{1, 3, 2, 4}, ids(got))
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		tied := NewCatalog([]Product{
			{ID: 10, Title: "a", Price: 50, Rating: 4},
			{ID: 11, Title: "b", Price: 50, Rating: 4},
			{ID: 12, Title: "c", Price: 50, Rating: 4},
		})
		got := Evaluate(tied, "", DefaultFilters(), SortPriceAsc)
		assert.Equal(t, []int{10, 11, 12}, ids(got))

		got = Evaluate(tied, "", DefaultFilters(), SortRatingDesc)
		assert.Equal(t, []int{10, 11, 12}, ids(got))
	})
}

func TestEvaluateFilterThenSort(t *testing.T) {
	// Rating filter first, then price ascending over the survivors.
	c := NewCatalog([]Product{
		{ID: 1, Title: "one", Price: 120, Rating: 4.2},
		{ID: 2, Title: "two", Price: 60, Rating: 4.8},
		{ID: 3, Title: "three", Price: 30, Rating: 3.1},
	})

	filters := DefaultFilters()
	filters.MinRating = 4
	got := Evaluate(c, "", filters, SortRelevance)
	assert.Equal(t, []int{1, 2}, ids(got))

	got = Evaluate(c, "", filters, SortPriceAsc)
	assert.Equal(t, []int{2, 1}, ids(got))
}

func TestEvaluateDoesNotMutateCatalog(t *testing.T) {
	c := fixtureCatalog()
	before := c.Products()

	_ = Evaluate(c, "", DefaultFilters(), SortPriceDesc)

	assert.Equal(t, before, c.Products())
}

func TestFilterStateClear(t *testing.T) {
	filters := FilterState{
		Categories: []string{"home"},
		Brands:     []string{"Lumen"},
		MinRating:  4,
		Price:      PriceRange{Min: 10, Max: 50},
	}

	filters.Clear()

	assert.Equal(t, DefaultFilters(), filters)
}

func TestFilterStateValidate(t *testing.T) {
	filters := DefaultFilters()
	require.NoError(t, filters.Validate())

	filters.Price = PriceRange{Min: 100, Max: 50}
	assert.Error(t, filters.Validate())

	filters = DefaultFilters()
	filters.MinRating = 5.5
	assert.Error(t, filters.Validate())
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortRelevance, key)

	key, err = ParseSortKey("price-asc")
	require.NoError(t, err)
	assert.Equal(t, SortPriceAsc, key)

	_, err = ParseSortKey("alphabetical")
	assert.Error(t, err)
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, 90.0, DiscountedPrice(Product{Price: 100, DiscountPercentage: 10}))
	assert.Equal(t, 549.0, DiscountedPrice(Product{Price: 549}))
	// 549 - 549*12.96/100 = 477.8496, rounded half up.
	assert.Equal(t, 477.85, DiscountedPrice(Product{Price: 549, DiscountPercentage: 12.96}))
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
