package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartService provides business logic for shopping cart operations.
// All operations act on the given session and return the updated summary.
type CartService interface {
	// AddItem adds one unit of a product to the cart. If the product is
	// already in the cart its quantity increases by one. Adding beyond the
	// product's stock fails with a conflict error.
	AddItem(ctx context.Context, s *Session, productID int) (*CartSummary, error)

	// IncreaseQuantity increments a cart line's quantity by one,
	// clamping at the product's stock.
	IncreaseQuantity(ctx context.Context, s *Session, productID int) (*CartSummary, error)

	// DecreaseQuantity decrements a cart line's quantity by one,
	// clamping at one. It never removes the line.
	DecreaseQuantity(ctx context.Context, s *Session, productID int) (*CartSummary, error)

	// RemoveItem removes a cart line entirely.
	RemoveItem(ctx context.Context, s *Session, productID int) (*CartSummary, error)

	// ClearCart removes all lines and returns the session to the cart stage.
	// Address and payment selections are retained.
	ClearCart(ctx context.Context, s *Session) error

	// Summary returns the cart with per-line display values and totals.
	Summary(ctx context.Context, s *Session) (*CartSummary, error)
}

// CartLine is a single cart entry: a product and its quantity.
type CartLine struct {
	Product  Product
	Quantity int
}

// CartLineView is a cart line with resolved pricing for display.
type CartLineView struct {
	Product  Product
	Quantity int

	// UnitPrice is the list price per unit, rounded to cents.
	UnitPrice decimal.Decimal

	// DiscountedUnitPrice is the per-unit price after discount, rounded to cents.
	DiscountedUnitPrice decimal.Decimal

	// LineDiscount is the total discount across the line's quantity.
	LineDiscount decimal.Decimal

	// LineTotal is the discounted line total (DiscountedUnitPrice basis).
	LineTotal decimal.Decimal
}

// CartSummary aggregates cart lines with calculated totals.
//
// GrandTotal = Subtotal - TotalDiscount + ShippingCost.
type CartSummary struct {
	Lines     []CartLineView
	ItemCount int

	// Subtotal is the pre-discount sum of line list prices.
	Subtotal decimal.Decimal

	// DiscountedSubtotal is the sum of discounted line totals.
	DiscountedSubtotal decimal.Decimal

	// TotalDiscount is the summed per-line discount.
	TotalDiscount decimal.Decimal

	ShippingCost decimal.Decimal
	GrandTotal   decimal.Decimal
}
