package routes

import (
	"net/http"

	"github.com/trahman/smartshop/internal/handler/storefront"
)

// StorefrontDeps contains the handlers wired into the storefront routes.
type StorefrontDeps struct {
	Storefront *storefront.Handler

	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}
