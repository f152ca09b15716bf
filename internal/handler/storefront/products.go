package storefront

import (
	"net/http"

	"github.com/trahman/smartshop/internal/domain"
)

// ListProducts handles GET /products. Supports ?category= for an exact
// category match and ?q= for a case-insensitive title search.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

// ListCategories handles GET /products/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
	})
}
