package order

import (
	"context"
	"fmt"
	"time"
)

// MockProvider is a mock order provider for testing.
// Confirms immediately unless PlaceOrderFunc overrides the behavior.
type MockProvider struct {
	// PlaceOrderFunc allows customizing placement behavior per test.
	PlaceOrderFunc func(ctx context.Context, snapshot Snapshot) (*Confirmation, error)

	// Placed stores the snapshots received, in call order.
	Placed []Snapshot

	// CallLog tracks method calls for test assertions.
	CallLog []string
}

// NewMockProvider creates a new mock order provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// PlaceOrder records the snapshot and returns a canned confirmation.
func (m *MockProvider) PlaceOrder(ctx context.Context, snapshot Snapshot) (*Confirmation, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("PlaceOrder(%d lines, %s)", len(snapshot.Lines), snapshot.GrandTotal.StringFixed(2)))
	m.Placed = append(m.Placed, snapshot)

	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, snapshot)
	}

	return &Confirmation{
		OrderID:       NewOrderID(),
		Lines:         snapshot.Lines,
		GrandTotal:    snapshot.GrandTotal,
		Address:       snapshot.Address,
		PaymentMethod: snapshot.PaymentMethod,
		PlacedAt:      time.Now(),
	}, nil
}
