package domain

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound     = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCartLineNotFound    = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidCoupon       = &Error{Code: EINVALID, Message: "Invalid coupon code."}
	ErrCartEmpty           = &Error{Code: EINVALID, Message: "Your cart is empty!"}
	ErrInsufficientBalance = &Error{Code: EPAYMENT, Message: "Insufficient balance!"}
)

// CartLine is one product's aggregated quantity within the cart.
// Product fields are snapshotted at add time so later catalog changes
// do not reprice lines already in the cart.
type CartLine struct {
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price x quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CouponState is the currently applied discount, if any.
// Each apply attempt overwrites the previous state, success or failure.
type CouponState struct {
	Applied bool            `json:"applied"`
	Code    string          `json:"code,omitempty"`
	Rate    decimal.Decimal `json:"rate"`
}

// Quote is the derived pricing breakdown for a cart.
// It is recomputed from cart and coupon state on every read and never
// cached across mutations. Values carry full precision; rounding to two
// decimal places happens only at the presentation edge.
type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
}

// CartSummary aggregates cart contents with the derived quote.
type CartSummary struct {
	Lines     []CartLine  `json:"lines"`
	ItemCount int         `json:"item_count"`
	Coupon    CouponState `json:"coupon"`
	Quote     Quote       `json:"quote"`
}
