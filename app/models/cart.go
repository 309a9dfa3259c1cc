package models

import "github.com/shopspring/decimal"

// CartLine is one distinct (product, weight, flavor) selection in the cart.
// At most one line exists per composite key; adding the same combination
// again increments the quantity instead of appending a duplicate.
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Weight   string  `json:"weight"`
	Flavor   string  `json:"flavor"`
	Quantity int     `json:"quantity"`
}

// SameKey reports whether the line matches the given composite key.
func (l CartLine) SameKey(productID, weight, flavor string) bool {
	return l.Product.ID == productID && l.Weight == weight && l.Flavor == flavor
}

// Subtotal is the line price contribution, unit price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState is the full cart snapshot handed to consumers. Totals are
// derived values, recomputed from the lines on every read.
type CartState struct {
	Lines      []CartLine      `json:"lines"`
	IsOpen     bool            `json:"is_open"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
