package cart

// ItemDTO is one cart line: a product reference and its quantity. Quantities
// are always at least 1; absent products simply have no line.
type ItemDTO struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CartDTO is the cart response body. TotalItems is the quantity sum across
// all lines, the number the header badge displays.
type CartDTO struct {
	Items      []ItemDTO `json:"items"`
	TotalItems int       `json:"total_items"`
}

// QuantityOf returns the quantity for the product, zero when absent.
func (c *CartDTO) QuantityOf(productID int) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}
