package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog product offering.
type Product struct {
	ID          int
	Name        string
	Description string

	// Price is the list price per unit before any discount.
	Price decimal.Decimal

	// Discount is the percentage off the list price, in [0, 100].
	// Zero means the product is not on sale.
	Discount decimal.Decimal

	Category string
	Rating   float64

	// Stock is the number of units available. Quantity in a cart line
	// never exceeds this ceiling.
	Stock int

	ImageURL string
}

// OnSale reports whether the product carries a discount.
func (p Product) OnSale() bool {
	return p.Discount.IsPositive()
}
