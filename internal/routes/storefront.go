package routes

import (
	"net/http"

	"github.com/trahman/smartshop/internal/router"
)

// RegisterStorefrontRoutes registers the customer-facing JSON API.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	h := deps.Storefront

	// Catalog browsing
	r.Get("/products", h.ListProducts)
	r.Get("/products/categories", h.ListCategories)

	// Shopping cart
	r.Get("/cart", h.ViewCart)
	r.Post("/cart/add", h.AddItem)
	r.Post("/cart/increase", h.IncreaseQuantity)
	r.Post("/cart/decrease", h.DecreaseQuantity)
	r.Post("/cart/remove", h.RemoveItem)

	// Coupons
	r.Post("/coupon/apply", h.ApplyCoupon)

	// Balance
	r.Get("/balance", h.GetBalance)
	r.Post("/balance/add", h.AddFunds)

	// Checkout
	r.Post("/checkout", h.Checkout)

	// Contact form
	r.Post("/contact", h.Contact)

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if deps.MetricsHandler != nil {
		r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
}
