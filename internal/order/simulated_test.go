package order_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/ezonekart/internal/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeTestSnapshot() order.Snapshot {
	return order.Snapshot{
		Lines: []order.Line{
			{
				ProductID:           1,
				Name:                "Laptop",
				Quantity:            1,
				UnitPrice:           decimal.NewFromInt(1200),
				DiscountedUnitPrice: decimal.NewFromInt(1080),
				LineTotal:           decimal.NewFromInt(1080),
			},
		},
		Subtotal:      decimal.NewFromInt(1200),
		TotalDiscount: decimal.NewFromInt(120),
		ShippingCost:  decimal.NewFromInt(10),
		GrandTotal:    decimal.NewFromInt(1090),
		Address:       "123 Main St, Anytown, USA",
		PaymentMethod: "creditCard",
	}
}

func TestSimulatedProvider_PlaceOrder(t *testing.T) {
	provider := order.NewSimulatedProvider(0)

	conf, err := provider.PlaceOrder(context.Background(), makeTestSnapshot())

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(conf.OrderID, "ORD-"))
	assert.Equal(t, conf.OrderID, strings.ToUpper(conf.OrderID), "order ids are uppercase")
	assert.True(t, conf.GrandTotal.Equal(decimal.NewFromInt(1090)))
	assert.Equal(t, "123 Main St, Anytown, USA", conf.Address)
	assert.Equal(t, "creditCard", conf.PaymentMethod)
	assert.Len(t, conf.Lines, 1)
	assert.False(t, conf.PlacedAt.IsZero())
}

func TestSimulatedProvider_PlaceOrder_UniqueIDs(t *testing.T) {
	provider := order.NewSimulatedProvider(0)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		conf, err := provider.PlaceOrder(context.Background(), makeTestSnapshot())
		assert.NoError(t, err)
		assert.False(t, seen[conf.OrderID], "order id %s repeated", conf.OrderID)
		seen[conf.OrderID] = true
	}
}

func TestSimulatedProvider_PlaceOrder_EmptySnapshot(t *testing.T) {
	provider := order.NewSimulatedProvider(0)

	conf, err := provider.PlaceOrder(context.Background(), order.Snapshot{})

	assert.Nil(t, conf)
	assert.ErrorIs(t, err, order.ErrEmptySnapshot)
}

func TestSimulatedProvider_PlaceOrder_HonorsDelay(t *testing.T) {
	provider := order.NewSimulatedProvider(20 * time.Millisecond)

	start := time.Now()
	_, err := provider.PlaceOrder(context.Background(), makeTestSnapshot())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSimulatedProvider_PlaceOrder_ContextCancellation(t *testing.T) {
	provider := order.NewSimulatedProvider(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conf, err := provider.PlaceOrder(ctx, makeTestSnapshot())

	assert.Nil(t, conf)
	assert.ErrorIs(t, err, context.Canceled)
}
