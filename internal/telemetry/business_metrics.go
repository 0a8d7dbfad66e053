package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability
// of the storefront funnel.
type BusinessMetrics struct {
	// Catalog engagement
	ProductSearches *prometheus.CounterVec

	// Cart
	CartItemsAdded  prometheus.Counter
	CartUpdated     *prometheus.CounterVec
	CartCleared     *prometheus.CounterVec
	StockRejections prometheus.Counter

	// Checkout funnel
	CheckoutStarted   prometheus.Counter
	CheckoutStep      *prometheus.CounterVec
	CheckoutCompleted prometheus.Counter

	// Orders
	OrdersCreated      *prometheus.CounterVec
	OrderValue         prometheus.Histogram
	OrderItemCount     prometheus.Histogram
	OrdersFailed       prometheus.Counter
	OrdersInFlightHits prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "ezonekart"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		ProductSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_searches_total",
				Help:      "Total product list requests with filters",
			},
			[]string{"filter_type"}, // filter_type: search, category, search_and_category
		),

		CartItemsAdded: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total items added to the cart",
			},
		),
		CartUpdated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_updated_total",
				Help:      "Total cart update operations",
			},
			[]string{"action"}, // action: increase, decrease, remove
		),
		CartCleared: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total carts cleared",
			},
			[]string{"reason"}, // reason: purchase, manual, reset
		),
		StockRejections: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stock_rejections_total",
				Help:      "Total add-to-cart attempts rejected by the stock ceiling",
			},
		),

		CheckoutStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_started_total",
				Help:      "Total checkouts started from the cart stage",
			},
		),
		CheckoutStep: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_step_total",
				Help:      "Total completions of each checkout step",
			},
			[]string{"step"}, // step: address, payment
		),
		CheckoutCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_completed_total",
				Help:      "Total successful checkouts",
			},
		),

		OrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total orders created",
			},
			[]string{"payment_method"},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value",
				Help:      "Order grand total distribution",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of items per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 15, 20},
			},
		),
		OrdersFailed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_failed_total",
				Help:      "Total order placements rejected by the processor",
			},
		),
		OrdersInFlightHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_in_flight_hits_total",
				Help:      "Total placement attempts rejected because an order was already in flight",
			},
		),
	}

	return m
}

// Global instance for easy access from services and handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}
