package domain

import (
	"context"

	"github.com/dukerupert/ezonekart/internal/order"
)

// CheckoutStage identifies where a session is in the checkout flow.
type CheckoutStage string

const (
	StageCart         CheckoutStage = "cart"
	StageAddress      CheckoutStage = "address"
	StagePayment      CheckoutStage = "payment"
	StageConfirmation CheckoutStage = "confirmation"
)

// PaymentMethod identifies how the shopper intends to pay.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "creditCard"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// Valid reports whether the payment method is one the store accepts.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodPayPal
}

// CheckoutService drives the staged checkout flow:
// cart -> address -> payment -> confirmation.
type CheckoutService interface {
	// State returns the session's current checkout state with cart totals.
	State(ctx context.Context, s *Session) (*CheckoutState, error)

	// SelectAddress records the shopper's shipping address.
	SelectAddress(ctx context.Context, s *Session, address string) error

	// SelectPaymentMethod records the shopper's payment method.
	SelectPaymentMethod(ctx context.Context, s *Session, method PaymentMethod) error

	// Advance moves the session to the next stage. Each transition is
	// guarded: leaving cart requires a non-empty cart, leaving address
	// requires a selected address, and leaving payment places the order.
	Advance(ctx context.Context, s *Session) (*CheckoutState, error)

	// Back returns from address or payment to the cart stage.
	Back(ctx context.Context, s *Session) (*CheckoutState, error)

	// ResetToCart starts a fresh cart after a confirmed order.
	// Address and payment selections are cleared.
	ResetToCart(ctx context.Context, s *Session) (*CheckoutState, error)

	// PlaceOrder submits the current cart as an order. On success the cart
	// is cleared and the session moves to confirmation; on failure the
	// session returns to payment with the cart intact.
	PlaceOrder(ctx context.Context, s *Session) (*order.Confirmation, error)
}

// CheckoutState is a snapshot of the session's checkout progress.
type CheckoutState struct {
	Stage         CheckoutStage
	Address       string
	PaymentMethod PaymentMethod

	// OrderPending is true while an order placement is in flight.
	OrderPending bool

	// Confirmation holds the most recent order confirmation, if any.
	Confirmation *order.Confirmation

	Summary *CartSummary
}
