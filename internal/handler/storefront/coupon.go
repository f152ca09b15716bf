package storefront

import (
	"net/http"

	"github.com/trahman/smartshop/internal/domain"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon handles POST /coupon/apply. A failed code clears any
// previously applied discount. Unknown and empty codes are not HTTP
// errors; the outcome message in the payload carries the verdict.
func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	sess := h.session(w, r)
	result, err := sess.Dispatch(r.Context(), domain.Command{Kind: domain.CmdApplyCoupon, Code: req.Code})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartPayload(result))
}
