package pricing

import (
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
)

// Result holds the outcome of applying a percentage discount to a unit price.
// Values are unrounded; round at aggregation or display time.
type Result struct {
	// Amount is the discount per unit: price * percent / 100.
	Amount decimal.Decimal

	// Price is the discounted unit price: price - Amount.
	Price decimal.Decimal
}

// Apply computes the discount for a unit price and a percentage in [0, 100].
// A zero percent yields a zero amount and the original price.
func Apply(price, percent decimal.Decimal) (Result, error) {
	if price.IsNegative() {
		return Result{}, domain.Errorf(domain.EINVALID, "pricing.apply", "price must not be negative: %s", price)
	}
	if percent.IsNegative() || percent.GreaterThan(oneHundred) {
		return Result{}, domain.Errorf(domain.EINVALID, "pricing.apply", "discount percent must be between 0 and 100: %s", percent)
	}

	amount := price.Mul(percent).Div(oneHundred)
	return Result{
		Amount: amount,
		Price:  price.Sub(amount),
	}, nil
}

// Round2 rounds a monetary value to cents, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
