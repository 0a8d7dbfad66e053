package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/ezonekart/internal/catalog"
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/shipping"
	"github.com/dukerupert/ezonekart/internal/telemetry"
)

type cartService struct {
	catalog  catalog.Provider
	shipping shipping.Provider
	logger   *slog.Logger
}

// NewCartService creates the cart service backed by the given catalog and
// shipping providers.
func NewCartService(cat catalog.Provider, ship shipping.Provider, logger *slog.Logger) domain.CartService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cartService{
		catalog:  cat,
		shipping: ship,
		logger:   logger,
	}
}

// AddItem adds one unit of a product to the cart.
// Quantity never exceeds the product's stock: a new line starts at one,
// and an existing line at the ceiling is rejected rather than clamped.
func (svc *cartService) AddItem(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	product, err := svc.catalog.Get(ctx, productID)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	if i := s.LineIndex(productID); i >= 0 {
		if s.Lines[i].Quantity+1 > product.Stock {
			if telemetry.Business != nil {
				telemetry.Business.StockRejections.Inc()
			}
			return nil, ErrStockExceeded
		}
		s.Lines[i].Quantity++
	} else {
		if product.Stock < 1 {
			if telemetry.Business != nil {
				telemetry.Business.StockRejections.Inc()
			}
			return nil, ErrStockExceeded
		}
		s.Lines = append(s.Lines, domain.CartLine{Product: *product, Quantity: 1})
	}

	if telemetry.Business != nil {
		telemetry.Business.CartItemsAdded.Inc()
	}
	svc.logger.Debug("item added to cart", "product_id", productID)

	return summarizeLocked(ctx, s, svc.shipping)
}

// IncreaseQuantity increments a line's quantity, clamping at stock.
func (svc *cartService) IncreaseQuantity(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	s.Lock()
	defer s.Unlock()

	i := s.LineIndex(productID)
	if i < 0 {
		return nil, ErrItemNotInCart
	}

	if s.Lines[i].Quantity < s.Lines[i].Product.Stock {
		s.Lines[i].Quantity++
	}

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues("increase").Inc()
	}

	return summarizeLocked(ctx, s, svc.shipping)
}

// DecreaseQuantity decrements a line's quantity, clamping at one.
// Removing a line is a separate, explicit operation.
func (svc *cartService) DecreaseQuantity(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	s.Lock()
	defer s.Unlock()

	i := s.LineIndex(productID)
	if i < 0 {
		return nil, ErrItemNotInCart
	}

	if s.Lines[i].Quantity > 1 {
		s.Lines[i].Quantity--
	}

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues("decrease").Inc()
	}

	return summarizeLocked(ctx, s, svc.shipping)
}

// RemoveItem removes a cart line entirely.
func (svc *cartService) RemoveItem(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	s.Lock()
	defer s.Unlock()

	i := s.LineIndex(productID)
	if i < 0 {
		return nil, ErrItemNotInCart
	}

	s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues("remove").Inc()
	}
	svc.logger.Debug("item removed from cart", "product_id", productID)

	return summarizeLocked(ctx, s, svc.shipping)
}

// ClearCart removes all lines and returns the session to the cart stage.
// Address and payment selections are retained.
func (svc *cartService) ClearCart(ctx context.Context, s *domain.Session) error {
	s.Lock()
	defer s.Unlock()

	s.Lines = nil
	s.Stage = domain.StageCart

	if telemetry.Business != nil {
		telemetry.Business.CartCleared.WithLabelValues("manual").Inc()
	}
	svc.logger.Debug("cart cleared")

	return nil
}

// Summary returns the cart with per-line display values and totals.
func (svc *cartService) Summary(ctx context.Context, s *domain.Session) (*domain.CartSummary, error) {
	s.Lock()
	defer s.Unlock()

	return summarizeLocked(ctx, s, svc.shipping)
}
