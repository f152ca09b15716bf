package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	if !actual.Equal(dec(expected)) {
		t.Errorf("%s = %s, want %s", field, actual.String(), expected)
	}
}

func TestEngine_Quote_EmptyCart(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	q := engine.Quote(nil, domain.CouponState{})

	assertDecimalEqual(t, "0", q.Subtotal, "Subtotal")
	assertDecimalEqual(t, "0", q.DeliveryCharge, "DeliveryCharge")
	assertDecimalEqual(t, "0", q.ShippingCost, "ShippingCost")
	assertDecimalEqual(t, "0", q.Discount, "Discount")
	assertDecimalEqual(t, "0", q.Total, "Total")
}

func TestEngine_Quote_SingleLineNoCoupon(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	lines := []domain.CartLine{
		{ProductID: 1, Title: "Watch", Price: dec("19.99"), Quantity: 2},
	}

	q := engine.Quote(lines, domain.CouponState{})

	assertDecimalEqual(t, "39.98", q.Subtotal, "Subtotal")
	assertDecimalEqual(t, "50", q.DeliveryCharge, "DeliveryCharge")
	assertDecimalEqual(t, "10", q.ShippingCost, "ShippingCost")
	assertDecimalEqual(t, "0", q.Discount, "Discount")
	assertDecimalEqual(t, "99.98", q.Total, "Total")
}

func TestEngine_Quote_WithCoupon(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	lines := []domain.CartLine{
		{ProductID: 1, Title: "Watch", Price: dec("19.99"), Quantity: 2},
	}
	coupon := domain.CouponState{Applied: true, Code: "SMART10", Rate: dec("0.10")}

	q := engine.Quote(lines, coupon)

	// Discount carries full precision before display rounding.
	assertDecimalEqual(t, "3.998", q.Discount, "Discount")
	assertDecimalEqual(t, "95.982", q.Total, "Total")
}

func TestEngine_Quote_MultipleLines(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	lines := []domain.CartLine{
		{ProductID: 1, Price: dec("109.95"), Quantity: 1},
		{ProductID: 2, Price: dec("22.30"), Quantity: 3},
	}

	q := engine.Quote(lines, domain.CouponState{})

	assertDecimalEqual(t, "176.85", q.Subtotal, "Subtotal")
	assertDecimalEqual(t, "236.85", q.Total, "Total")
}

func TestEngine_Quote_Deterministic(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	lines := []domain.CartLine{
		{ProductID: 1, Price: dec("19.99"), Quantity: 2},
	}
	coupon := domain.CouponState{Applied: true, Rate: dec("0.10")}

	first := engine.Quote(lines, coupon)
	second := engine.Quote(lines, coupon)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Discount.Equal(second.Discount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestEngine_Quote_CouponRateIgnoredWhenNotApplied(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFees())

	lines := []domain.CartLine{
		{ProductID: 1, Price: dec("100"), Quantity: 1},
	}
	// Stale rate with applied=false must contribute nothing.
	coupon := domain.CouponState{Applied: false, Rate: dec("0.10")}

	q := engine.Quote(lines, coupon)

	assertDecimalEqual(t, "0", q.Discount, "Discount")
	assertDecimalEqual(t, "160", q.Total, "Total")
}

func TestEngine_Quote_CustomFees(t *testing.T) {
	engine := pricing.NewEngine(pricing.Fees{
		DeliveryCharge: dec("25"),
		ShippingCost:   dec("5.50"),
	})

	lines := []domain.CartLine{
		{ProductID: 1, Price: dec("10"), Quantity: 1},
	}

	q := engine.Quote(lines, domain.CouponState{})

	assertDecimalEqual(t, "40.50", q.Total, "Total")
}

func TestRoundedQuote(t *testing.T) {
	q := domain.Quote{
		Subtotal:       dec("39.98"),
		DeliveryCharge: dec("50"),
		ShippingCost:   dec("10"),
		Discount:       dec("3.998"),
		Total:          dec("95.982"),
	}

	rounded := pricing.RoundedQuote(q)

	assert.Equal(t, "4.00", rounded.Discount.StringFixed(2))
	assert.Equal(t, "95.98", rounded.Total.StringFixed(2))

	// Original quote is untouched.
	assertDecimalEqual(t, "3.998", q.Discount, "Discount")
}
