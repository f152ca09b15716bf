package storefront

import (
	"net/http"

	"github.com/trahman/smartshop/internal/domain"
)

// GetBalance handles GET /balance.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	result, err := sess.Summary(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"balance": result.Balance.Round(2),
	})
}

// AddFunds handles POST /balance/add. Each call credits the configured
// top-up amount to the session's balance.
func (h *Handler) AddFunds(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	result, err := sess.Dispatch(r.Context(), domain.Command{Kind: domain.CmdCreditBalance})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartPayload(result))
}
