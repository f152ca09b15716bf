package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/middleware"
	"github.com/trahman/smartshop/internal/pricing"
	"github.com/trahman/smartshop/internal/service"
)

const maxBodyBytes = 1 << 16

// cartPayload is the response envelope for every cart-affecting route.
// Money fields are rounded to two places for presentation; the engine
// keeps full precision internally.
type cartPayload struct {
	Cart        domain.CartSummary     `json:"cart"`
	Balance     decimal.Decimal        `json:"balance"`
	CanCheckout bool                   `json:"can_checkout"`
	Message     string                 `json:"message,omitempty"`
	Checkout    *domain.CheckoutResult `json:"checkout,omitempty"`
}

func newCartPayload(res *service.DispatchResult) cartPayload {
	p := cartPayload{
		Cart:        res.Summary,
		Balance:     res.Balance.Round(2),
		CanCheckout: res.CanCheckout,
		Message:     res.Message,
	}
	p.Cart.Quote = pricing.RoundedQuote(res.Summary.Quote)

	if res.Checkout != nil {
		rounded := *res.Checkout
		rounded.Total = rounded.Total.Round(2)
		rounded.Balance = rounded.Balance.Round(2)
		p.Checkout = &rounded
	}
	return p
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps a domain error to an HTTP status and writes the
// structured error body. Internal details never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := errorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())
	if status >= 500 {
		logger.Error("request failed", "error", err.Error(), "code", code, "status", status)
	} else {
		logger.Info("request rejected", "code", code, "status", status)
	}

	respondJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EPAYMENT:
		return http.StatusPaymentRequired
	case domain.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON parses a JSON request body into dst. An empty body is an
// error so handlers can rely on required fields being present.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Errorf(domain.EINVALID, "storefront.decode", "request body is required")
		}
		return domain.Errorf(domain.EINVALID, "storefront.decode", "invalid request body: %v", err)
	}
	return nil
}
