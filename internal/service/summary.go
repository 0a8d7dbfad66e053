package service

import (
	"context"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/pricing"
	"github.com/dukerupert/ezonekart/internal/shipping"
	"github.com/shopspring/decimal"
)

// summarizeLocked computes the cart summary for a session.
// Callers must hold the session lock.
//
// Line arithmetic stays unrounded; each displayed value and each total is
// rounded to cents independently, and the grand total is derived from the
// rounded totals so that GrandTotal = Subtotal - TotalDiscount + ShippingCost
// holds exactly.
func summarizeLocked(ctx context.Context, s *domain.Session, ship shipping.Provider) (*domain.CartSummary, error) {
	var (
		subtotal           decimal.Decimal
		totalDiscount      decimal.Decimal
		discountedSubtotal decimal.Decimal
	)

	lines := make([]domain.CartLineView, 0, len(s.Lines))
	for _, line := range s.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))

		res, err := pricing.Apply(line.Product.Price, line.Product.Discount)
		if err != nil {
			return nil, err
		}

		subtotal = subtotal.Add(line.Product.Price.Mul(qty))
		totalDiscount = totalDiscount.Add(res.Amount.Mul(qty))
		discountedSubtotal = discountedSubtotal.Add(res.Price.Mul(qty))

		lines = append(lines, domain.CartLineView{
			Product:             line.Product,
			Quantity:            line.Quantity,
			UnitPrice:           pricing.Round2(line.Product.Price),
			DiscountedUnitPrice: pricing.Round2(res.Price),
			LineDiscount:        pricing.Round2(res.Amount.Mul(qty)),
			LineTotal:           pricing.Round2(res.Price.Mul(qty)),
		})
	}

	shippingCost, err := ship.Cost(ctx, len(s.Lines))
	if err != nil {
		return nil, err
	}

	summary := &domain.CartSummary{
		Lines:              lines,
		ItemCount:          len(s.Lines),
		Subtotal:           pricing.Round2(subtotal),
		DiscountedSubtotal: pricing.Round2(discountedSubtotal),
		TotalDiscount:      pricing.Round2(totalDiscount),
		ShippingCost:       pricing.Round2(shippingCost),
	}
	summary.GrandTotal = summary.Subtotal.Sub(summary.TotalDiscount).Add(summary.ShippingCost)

	return summary, nil
}
