package catalog

// ProductDTO is the catalog product payload returned to clients. It carries
// the derived discounted price alongside the stored list price.
type ProductDTO struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountedPrice    float64 `json:"discounted_price"`
	Rating             float64 `json:"rating"`
	Thumbnail          string  `json:"thumbnail"`
}

// NewProductDTO builds a DTO from a catalog product.
func NewProductDTO(p Product) ProductDTO {
	return ProductDTO{
		ID:                 p.ID,
		Title:              p.Title,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		DiscountedPrice:    DiscountedPrice(p),
		Rating:             p.Rating,
		Thumbnail:          p.Thumbnail,
	}
}

// BrowseInput holds the decoded query parameters for a catalog browse.
// Zero values mean "no constraint" for their dimension.
type BrowseInput struct {
	Search     string
	Categories []string
	Brands     []string
	MinRating  float64
	PriceMin   *float64
	PriceMax   *float64
	Sort       string
}

// BrowseResultDTO is the browse response body.
type BrowseResultDTO struct {
	Products []ProductDTO `json:"products"`
	Matched  int          `json:"matched"`
	Total    int          `json:"total"`
}

// FacetsDTO lists the filterable dimensions of the loaded catalog.
type FacetsDTO struct {
	Categories   []string `json:"categories"`
	Brands       []string `json:"brands"`
	PriceCeiling float64  `json:"price_ceiling"`
}
