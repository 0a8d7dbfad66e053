package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/order"
	"github.com/dukerupert/ezonekart/internal/shipping"
	"github.com/dukerupert/ezonekart/internal/telemetry"
)

type checkoutService struct {
	shipping shipping.Provider
	orders   order.Provider
	logger   *slog.Logger
}

// NewCheckoutService creates the checkout service. Orders are submitted
// through the given provider; shipping costs come from the shipping
// provider so totals match the cart service.
func NewCheckoutService(ship shipping.Provider, orders order.Provider, logger *slog.Logger) domain.CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &checkoutService{
		shipping: ship,
		orders:   orders,
		logger:   logger,
	}
}

// State returns the session's current checkout state with cart totals.
func (svc *checkoutService) State(ctx context.Context, s *domain.Session) (*domain.CheckoutState, error) {
	s.Lock()
	defer s.Unlock()

	return svc.stateLocked(ctx, s)
}

func (svc *checkoutService) stateLocked(ctx context.Context, s *domain.Session) (*domain.CheckoutState, error) {
	summary, err := summarizeLocked(ctx, s, svc.shipping)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutState{
		Stage:         s.Stage,
		Address:       s.Address,
		PaymentMethod: s.PaymentMethod,
		OrderPending:  s.OrderPending,
		Confirmation:  s.LastConfirmation,
		Summary:       summary,
	}, nil
}

// SelectAddress records the shopper's shipping address.
func (svc *checkoutService) SelectAddress(ctx context.Context, s *domain.Session, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressRequired
	}

	s.Lock()
	defer s.Unlock()

	s.Address = address
	return nil
}

// SelectPaymentMethod records the shopper's payment method.
func (svc *checkoutService) SelectPaymentMethod(ctx context.Context, s *domain.Session, method domain.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}

	s.Lock()
	defer s.Unlock()

	s.PaymentMethod = method
	return nil
}

// Advance moves the session to the next checkout stage.
// From the payment stage it places the order.
func (svc *checkoutService) Advance(ctx context.Context, s *domain.Session) (*domain.CheckoutState, error) {
	s.Lock()

	switch s.Stage {
	case domain.StageCart:
		if len(s.Lines) == 0 {
			s.Unlock()
			return nil, ErrEmptyCart
		}
		s.Stage = domain.StageAddress
		if telemetry.Business != nil {
			telemetry.Business.CheckoutStarted.Inc()
		}
		defer s.Unlock()
		return svc.stateLocked(ctx, s)

	case domain.StageAddress:
		if s.Address == "" {
			s.Unlock()
			return nil, ErrAddressRequired
		}
		s.Stage = domain.StagePayment
		if telemetry.Business != nil {
			telemetry.Business.CheckoutStep.WithLabelValues("address").Inc()
		}
		defer s.Unlock()
		return svc.stateLocked(ctx, s)

	case domain.StagePayment:
		s.Unlock()
		if _, err := svc.PlaceOrder(ctx, s); err != nil {
			return nil, err
		}
		return svc.State(ctx, s)

	default:
		s.Unlock()
		return nil, ErrInvalidTransition
	}
}

// Back returns from address or payment to the cart stage.
func (svc *checkoutService) Back(ctx context.Context, s *domain.Session) (*domain.CheckoutState, error) {
	s.Lock()
	defer s.Unlock()

	if s.OrderPending {
		return nil, ErrOrderInFlight
	}

	switch s.Stage {
	case domain.StageAddress, domain.StagePayment:
		s.Stage = domain.StageCart
	default:
		return nil, ErrInvalidTransition
	}

	return svc.stateLocked(ctx, s)
}

// ResetToCart starts a fresh cart after a confirmed order.
// Address and payment selections are cleared along with the cart.
func (svc *checkoutService) ResetToCart(ctx context.Context, s *domain.Session) (*domain.CheckoutState, error) {
	s.Lock()
	defer s.Unlock()

	if s.Stage != domain.StageConfirmation {
		return nil, ErrInvalidTransition
	}

	s.Lines = nil
	s.Address = ""
	s.PaymentMethod = ""
	s.Stage = domain.StageCart

	if telemetry.Business != nil {
		telemetry.Business.CartCleared.WithLabelValues("reset").Inc()
	}

	return svc.stateLocked(ctx, s)
}

// PlaceOrder submits the current cart as an order.
//
// The pending flag is set under lock before the provider call, so a second
// concurrent placement fails fast instead of producing a duplicate order.
// The provider receives a sealed snapshot and runs outside the lock.
func (svc *checkoutService) PlaceOrder(ctx context.Context, s *domain.Session) (*order.Confirmation, error) {
	s.Lock()

	if s.OrderPending {
		s.Unlock()
		if telemetry.Business != nil {
			telemetry.Business.OrdersInFlightHits.Inc()
		}
		return nil, ErrOrderInFlight
	}
	if s.Stage != domain.StagePayment {
		s.Unlock()
		return nil, ErrInvalidTransition
	}
	if len(s.Lines) == 0 {
		s.Unlock()
		return nil, ErrEmptyCart
	}
	if s.Address == "" {
		s.Unlock()
		return nil, ErrAddressRequired
	}
	if s.PaymentMethod == "" {
		s.Unlock()
		return nil, ErrPaymentMethodRequired
	}

	summary, err := summarizeLocked(ctx, s, svc.shipping)
	if err != nil {
		s.Unlock()
		return nil, err
	}

	snapshot := buildSnapshot(summary, s.Address, string(s.PaymentMethod))
	s.OrderPending = true
	s.Unlock()

	conf, placeErr := svc.orders.PlaceOrder(ctx, snapshot)

	s.Lock()
	defer s.Unlock()
	s.OrderPending = false

	if placeErr != nil {
		s.Stage = domain.StagePayment
		if telemetry.Business != nil {
			telemetry.Business.OrdersFailed.Inc()
		}
		svc.logger.Error("order placement failed", "error", placeErr)
		return nil, domain.WrapError(placeErr, domain.EPAYMENT, "checkout.place_order", "Order placement failed, please try again")
	}

	s.LastConfirmation = conf
	s.Lines = nil
	s.Stage = domain.StageConfirmation

	if telemetry.Business != nil {
		telemetry.Business.CheckoutStep.WithLabelValues("payment").Inc()
		telemetry.Business.CheckoutCompleted.Inc()
		telemetry.Business.OrdersCreated.WithLabelValues(snapshot.PaymentMethod).Inc()
		telemetry.Business.OrderValue.Observe(snapshot.GrandTotal.InexactFloat64())
		telemetry.Business.OrderItemCount.Observe(float64(len(snapshot.Lines)))
		telemetry.Business.CartCleared.WithLabelValues("purchase").Inc()
	}
	svc.logger.Info("order placed", "order_id", conf.OrderID, "grand_total", conf.GrandTotal.StringFixed(2))

	return conf, nil
}

// buildSnapshot seals the cart summary into an immutable order snapshot.
func buildSnapshot(summary *domain.CartSummary, address, paymentMethod string) order.Snapshot {
	lines := make([]order.Line, len(summary.Lines))
	for i, line := range summary.Lines {
		lines[i] = order.Line{
			ProductID:           line.Product.ID,
			Name:                line.Product.Name,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			DiscountedUnitPrice: line.DiscountedUnitPrice,
			LineTotal:           line.LineTotal,
		}
	}

	return order.Snapshot{
		Lines:         lines,
		Subtotal:      summary.Subtotal,
		TotalDiscount: summary.TotalDiscount,
		ShippingCost:  summary.ShippingCost,
		GrandTotal:    summary.GrandTotal,
		Address:       address,
		PaymentMethod: paymentMethod,
	}
}
