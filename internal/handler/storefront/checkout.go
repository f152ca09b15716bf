package storefront

import (
	"net/http"

	"github.com/trahman/smartshop/internal/domain"
)

// Checkout handles POST /checkout. Rejections (empty cart, balance too
// low) are normal outcomes: the response is 200 with the verdict in the
// checkout block, mirroring what a storefront page would show inline.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	result, err := sess.Dispatch(r.Context(), domain.Command{Kind: domain.CmdCheckout})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartPayload(result))
}
