package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dukerupert/ezonekart/internal"
	"github.com/dukerupert/ezonekart/internal/catalog"
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/handler/storefront"
	"github.com/dukerupert/ezonekart/internal/middleware"
	"github.com/dukerupert/ezonekart/internal/order"
	"github.com/dukerupert/ezonekart/internal/router"
	"github.com/dukerupert/ezonekart/internal/routes"
	"github.com/dukerupert/ezonekart/internal/service"
	"github.com/dukerupert/ezonekart/internal/shipping"
	"github.com/dukerupert/ezonekart/internal/telemetry"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	telemetry.InitBusinessMetrics(cfg.MetricsNamespace)

	// Providers
	catalogProvider := catalog.NewMemoryProvider(catalog.DemoProducts())
	shippingProvider := shipping.NewFlatRateProvider(decimal.NewFromFloat(cfg.ShippingFlatFee))
	orderProvider := order.NewSimulatedProvider(cfg.OrderDelay)

	// The storefront serves a single shopper
	session := domain.NewSession()

	// Services
	cartService := service.NewCartService(catalogProvider, shippingProvider, logger)
	checkoutService := service.NewCheckoutService(shippingProvider, orderProvider, logger)

	// Handlers
	productHandler := storefront.NewProductHandler(catalogProvider)
	cartHandler := storefront.NewCartHandler(cartService, session)
	checkoutHandler := storefront.NewCheckoutHandler(checkoutService, session, cfg.DefaultAddress)

	// HTTP metrics
	metrics := middleware.NewMetrics(cfg.MetricsNamespace)

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	r.Handle(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	routes.RegisterStorefrontRoutes(r, routes.StorefrontDeps{
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		CheckoutHandler: checkoutHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Env)

	return http.ListenAndServe(addr, r)
}
