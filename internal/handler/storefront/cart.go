package storefront

import (
	"net/http"

	"github.com/trahman/smartshop/internal/domain"
)

type cartItemRequest struct {
	ProductID int `json:"product_id"`
}

// ViewCart handles GET /cart.
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	result, err := sess.Summary(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartPayload(result))
}

// AddItem handles POST /cart/add.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	h.dispatchCartCommand(w, r, domain.CmdAddItem)
}

// IncreaseQuantity handles POST /cart/increase.
func (h *Handler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.dispatchCartCommand(w, r, domain.CmdIncreaseQty)
}

// DecreaseQuantity handles POST /cart/decrease. Decreasing a line at
// quantity one removes it.
func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.dispatchCartCommand(w, r, domain.CmdDecreaseQty)
}

// RemoveItem handles POST /cart/remove.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.dispatchCartCommand(w, r, domain.CmdRemoveItem)
}

func (h *Handler) dispatchCartCommand(w http.ResponseWriter, r *http.Request, kind domain.CommandKind) {
	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.ProductID <= 0 {
		respondError(w, r, domain.Errorf(domain.EINVALID, "storefront.cart", "product_id is required"))
		return
	}

	sess := h.session(w, r)
	result, err := sess.Dispatch(r.Context(), domain.Command{Kind: kind, ProductID: req.ProductID})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartPayload(result))
}
