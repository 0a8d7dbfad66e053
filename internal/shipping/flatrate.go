package shipping

import (
	"context"

	"github.com/shopspring/decimal"
)

// FlatRateProvider charges a fixed fee for any non-empty cart.
// Used when real carrier integration is not needed.
type FlatRateProvider struct {
	fee decimal.Decimal
}

// NewFlatRateProvider creates a new flat-rate shipping provider.
func NewFlatRateProvider(fee decimal.Decimal) Provider {
	return &FlatRateProvider{fee: fee}
}

// Cost returns the flat fee, or zero when the cart is empty.
func (p *FlatRateProvider) Cost(ctx context.Context, lineCount int) (decimal.Decimal, error) {
	if lineCount == 0 {
		return decimal.Zero, nil
	}
	return p.fee, nil
}
