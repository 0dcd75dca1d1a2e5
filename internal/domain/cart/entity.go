// internal/domain/cart/entity.go
package cart

// CartLine is one product in a ledger. Name, price and image are captured
// when the product is first added and are not refreshed afterwards.
type CartLine struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // Price at time of adding
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Delivery int64 `json:"delivery"`
	Total    int64 `json:"total"`
}

// CartResponse is the shape returned by every cart endpoint
type CartResponse struct {
	Items  []CartLine `json:"items"`
	Totals CartTotals `json:"totals"`
}
