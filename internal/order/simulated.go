package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SimulatedProvider mimics a real order processor without any network calls.
// It sleeps for a configurable delay, then issues a confirmation.
type SimulatedProvider struct {
	delay time.Duration
}

// NewSimulatedProvider creates a simulated order processor.
// A zero delay confirms immediately.
func NewSimulatedProvider(delay time.Duration) Provider {
	return &SimulatedProvider{delay: delay}
}

// PlaceOrder waits for the configured processing delay and confirms the
// order. Cancellation via ctx aborts the wait; this is intended for
// process shutdown, not shopper-facing cancellation.
func (p *SimulatedProvider) PlaceOrder(ctx context.Context, snapshot Snapshot) (*Confirmation, error) {
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptySnapshot
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
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

// NewOrderID generates a unique order id: ORD-{timestamp}-{random}.
func NewOrderID() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
