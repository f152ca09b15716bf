// Package pricing computes order totals from cart contents and coupon
// state. The engine is pure: the same inputs always produce the same
// quote, and it mutates nothing.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/trahman/smartshop/internal/domain"
)

// Fees holds the fixed per-order charges applied to non-empty carts.
type Fees struct {
	DeliveryCharge decimal.Decimal
	ShippingCost   decimal.Decimal
}

// DefaultFees returns the standard storefront fees.
func DefaultFees() Fees {
	return Fees{
		DeliveryCharge: decimal.NewFromInt(50),
		ShippingCost:   decimal.NewFromInt(10),
	}
}

// Engine computes quotes for cart contents.
type Engine struct {
	fees Fees
}

// NewEngine creates a pricing engine with the given fees.
func NewEngine(fees Fees) *Engine {
	return &Engine{fees: fees}
}

// Quote computes the pricing breakdown for the given lines and coupon state.
// An empty cart quotes zero across the board: fixed fees only apply when
// there is something to deliver. No intermediate rounding is performed;
// callers round at the presentation edge via RoundedQuote.
func (e *Engine) Quote(lines []domain.CartLine, coupon domain.CouponState) domain.Quote {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	deliveryCharge := decimal.Zero
	shippingCost := decimal.Zero
	if len(lines) > 0 {
		deliveryCharge = e.fees.DeliveryCharge
		shippingCost = e.fees.ShippingCost
	}

	discount := decimal.Zero
	if coupon.Applied {
		discount = subtotal.Mul(coupon.Rate)
	}

	total := subtotal.Add(deliveryCharge).Add(shippingCost).Sub(discount)

	return domain.Quote{
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		ShippingCost:   shippingCost,
		Discount:       discount,
		Total:          total,
	}
}

// RoundedQuote returns a copy of q with every amount rounded to two
// decimal places, for display. The unrounded quote remains authoritative
// for balance checks and debits.
func RoundedQuote(q domain.Quote) domain.Quote {
	return domain.Quote{
		Subtotal:       q.Subtotal.Round(2),
		DeliveryCharge: q.DeliveryCharge.Round(2),
		ShippingCost:   q.ShippingCost.Round(2),
		Discount:       q.Discount.Round(2),
		Total:          q.Total.Round(2),
	}
}
