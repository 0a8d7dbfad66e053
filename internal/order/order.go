package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptySnapshot is returned when a snapshot carries no lines.
	ErrEmptySnapshot = errors.New("order snapshot has no lines")

	// ErrProcessingFailed is returned when the processor rejects an order.
	ErrProcessingFailed = errors.New("order processing failed")
)

// Provider defines the interface for order placement.
// Implementations consume a sealed snapshot and never mutate cart state.
type Provider interface {
	// PlaceOrder submits the snapshot and returns a confirmation with a
	// fresh unique order id.
	PlaceOrder(ctx context.Context, snapshot Snapshot) (*Confirmation, error)
}

// Line is a single order line as captured at placement time.
type Line struct {
	ProductID           int
	Name                string
	Quantity            int
	UnitPrice           decimal.Decimal
	DiscountedUnitPrice decimal.Decimal
	LineTotal           decimal.Decimal
}

// Snapshot is an immutable copy of the cart and totals at placement time.
// The provider receives its own copy, so later cart changes cannot leak in.
type Snapshot struct {
	Lines []Line

	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	ShippingCost  decimal.Decimal
	GrandTotal    decimal.Decimal

	Address       string
	PaymentMethod string
}

// Confirmation is the receipt for a successfully placed order.
type Confirmation struct {
	// OrderID follows the ORD-{timestamp}-{random} format.
	OrderID string

	Lines         []Line
	GrandTotal    decimal.Decimal
	Address       string
	PaymentMethod string
	PlacedAt      time.Time
}
