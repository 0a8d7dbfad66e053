package shipping_test

import (
	"context"
	"testing"

	"github.com/dukerupert/ezonekart/internal/shipping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlatRateProvider_Cost(t *testing.T) {
	tests := []struct {
		name      string
		fee       string
		lineCount int
		want      string
	}{
		{
			name:      "empty cart ships free",
			fee:       "10",
			lineCount: 0,
			want:      "0.00",
		},
		{
			name:      "single line pays the flat fee",
			fee:       "10",
			lineCount: 1,
			want:      "10.00",
		},
		{
			name:      "fee does not scale with line count",
			fee:       "10",
			lineCount: 7,
			want:      "10.00",
		},
		{
			name:      "fractional fee is preserved",
			fee:       "7.95",
			lineCount: 2,
			want:      "7.95",
		},
		{
			name:      "zero fee store",
			fee:       "0",
			lineCount: 3,
			want:      "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := shipping.NewFlatRateProvider(decimal.RequireFromString(tt.fee))

			cost, err := provider.Cost(context.Background(), tt.lineCount)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, cost.StringFixed(2))
		})
	}
}

func TestFlatRateProvider_CostIsIdempotent(t *testing.T) {
	provider := shipping.NewFlatRateProvider(decimal.NewFromInt(10))

	first, err1 := provider.Cost(context.Background(), 2)
	second, err2 := provider.Cost(context.Background(), 2)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.True(t, first.Equal(second))
}
