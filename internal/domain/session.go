package domain

import (
	"sync"

	"github.com/dukerupert/ezonekart/internal/order"
)

// Session holds a single shopper's cart and checkout state in memory.
// Nothing persists across process restarts.
//
// Callers must hold the session lock while reading or writing fields.
// The cart and checkout services do this internally.
type Session struct {
	mu sync.Mutex

	// Lines are the cart entries in insertion order.
	Lines []CartLine

	Stage         CheckoutStage
	Address       string
	PaymentMethod PaymentMethod

	// OrderPending guards against concurrent order placement.
	// Set under lock before calling the order provider.
	OrderPending bool

	// LastConfirmation is the most recent successful order, if any.
	LastConfirmation *order.Confirmation
}

// NewSession creates a session with an empty cart at the cart stage.
func NewSession() *Session {
	return &Session{Stage: StageCart}
}

func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// LineIndex returns the index of the cart line for a product, or -1.
// Callers must hold the session lock.
func (s *Session) LineIndex(productID int) int {
	for i, line := range s.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}
