package pricing_test

import (
	"testing"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApply_PercentageDiscount(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		percent    string
		wantAmount string
		wantPrice  string
	}{
		{
			name:       "ten percent off laptop",
			price:      "1200",
			percent:    "10",
			wantAmount: "120.00",
			wantPrice:  "1080.00",
		},
		{
			name:       "fifteen percent off shirt",
			price:      "25",
			percent:    "15",
			wantAmount: "3.75",
			wantPrice:  "21.25",
		},
		{
			name:       "twenty percent off novel",
			price:      "15",
			percent:    "20",
			wantAmount: "3.00",
			wantPrice:  "12.00",
		},
		{
			name:       "zero percent keeps list price",
			price:      "800",
			percent:    "0",
			wantAmount: "0.00",
			wantPrice:  "800.00",
		},
		{
			name:       "full discount yields free item",
			price:      "50",
			percent:    "100",
			wantAmount: "50.00",
			wantPrice:  "0.00",
		},
		{
			name:       "zero price stays zero",
			price:      "0",
			percent:    "25",
			wantAmount: "0.00",
			wantPrice:  "0.00",
		},
		{
			name:       "fractional cents survive until rounding",
			price:      "19.99",
			percent:    "7.5",
			wantAmount: "1.50",
			wantPrice:  "18.49",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			percent := decimal.RequireFromString(tt.percent)

			result, err := pricing.Apply(price, percent)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAmount, pricing.Round2(result.Amount).StringFixed(2))
			assert.Equal(t, tt.wantPrice, pricing.Round2(result.Price).StringFixed(2))
		})
	}
}

func TestApply_RejectsOutOfRangeInputs(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		percent string
	}{
		{name: "negative price", price: "-5", percent: "10"},
		{name: "negative percent", price: "100", percent: "-1"},
		{name: "percent above one hundred", price: "100", percent: "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.Apply(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.percent))

			assert.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}

func TestApply_AmountPlusPriceEqualsListPrice(t *testing.T) {
	price := decimal.RequireFromString("123.45")
	percent := decimal.RequireFromString("17")

	result, err := pricing.Apply(price, percent)

	assert.NoError(t, err)
	assert.True(t, result.Amount.Add(result.Price).Equal(price),
		"discount amount and discounted price should sum to the list price")
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "1.13", pricing.Round2(decimal.RequireFromString("1.125")).StringFixed(2))
	assert.Equal(t, "1.12", pricing.Round2(decimal.RequireFromString("1.124")).StringFixed(2))
}
