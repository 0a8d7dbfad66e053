package shipping

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider defines the interface for shipping cost calculation.
// Implementations can integrate with carriers or apply store policies.
type Provider interface {
	// Cost returns the shipping charge for a cart with the given number
	// of lines.
	Cost(ctx context.Context, lineCount int) (decimal.Decimal, error)
}
