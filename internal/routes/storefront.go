package routes

import (
	"github.com/dukerupert/ezonekart/internal/router"
)

// RegisterStorefrontRoutes registers all shopper-facing storefront routes.
// The storefront serves a single shopper session, so no auth or per-user
// session routing is involved.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/categories", deps.ProductHandler.Categories)
	r.Get("/products/{id}", deps.ProductHandler.Get)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.Summary)
	r.Post("/cart/items", deps.CartHandler.Add)
	r.Post("/cart/items/{id}/increase", deps.CartHandler.Increase)
	r.Post("/cart/items/{id}/decrease", deps.CartHandler.Decrease)
	r.Delete("/cart/items/{id}", deps.CartHandler.Remove)
	r.Post("/cart/clear", deps.CartHandler.Clear)

	// Checkout flow
	r.Get("/checkout", deps.CheckoutHandler.State)
	r.Get("/checkout/options", deps.CheckoutHandler.Options)
	r.Post("/checkout/advance", deps.CheckoutHandler.Advance)
	r.Post("/checkout/back", deps.CheckoutHandler.Back)
	r.Post("/checkout/reset", deps.CheckoutHandler.Reset)
	r.Post("/checkout/address", deps.CheckoutHandler.SelectAddress)
	r.Post("/checkout/payment-method", deps.CheckoutHandler.SelectPaymentMethod)
	r.Post("/checkout/place-order", deps.CheckoutHandler.PlaceOrder)
}
