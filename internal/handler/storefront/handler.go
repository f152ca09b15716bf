package storefront

import (
	"log/slog"
	"net/http"

	"github.com/trahman/smartshop/internal/catalog"
	"github.com/trahman/smartshop/internal/service"
)

// Handler serves the storefront JSON API: catalog browsing, the cart,
// coupons, balance, and checkout. Session state lives in the registry;
// the browser only carries a session cookie.
type Handler struct {
	registry *service.Registry
	catalog  catalog.Catalog
	logger   *slog.Logger
	secure   bool
}

// New creates a storefront handler. secure controls the Secure flag on
// the session cookie and should be true behind TLS.
func New(registry *service.Registry, cat catalog.Catalog, logger *slog.Logger, secure bool) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		registry: registry,
		catalog:  cat,
		logger:   logger,
		secure:   secure,
	}
}

// session resolves the caller's session from the cookie, creating one
// (and setting the cookie) on first contact.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *service.Session {
	id := GetSessionIDFromCookie(r)
	sess := h.registry.GetOrCreate(id)
	if sess.ID != id {
		SetSessionCookie(w, sess.ID, h.secure)
	}
	return sess
}
