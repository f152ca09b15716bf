// Package coupon validates discount codes against a fixed rule set.
package coupon

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trahman/smartshop/internal/domain"
)

// Rule defines a single recognized coupon code.
type Rule struct {
	Code string          // stored uppercase
	Rate decimal.Decimal // discount fraction in [0,1]
}

// Result is the outcome of an apply attempt. Success or failure, it
// overwrites whatever coupon state the caller held before.
type Result struct {
	State   domain.CouponState
	Message string
}

// Validator checks submitted codes against its rule table.
// Validation is pure; the caller decides how long to keep the result.
type Validator struct {
	rules map[string]Rule
}

// NewValidator creates a validator for the given rules.
func NewValidator(rules []Rule) *Validator {
	v := &Validator{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		v.rules[strings.ToUpper(r.Code)] = r
	}
	return v
}

// DefaultRules returns the storefront's recognized codes.
func DefaultRules() []Rule {
	return []Rule{
		{Code: "SMART10", Rate: decimal.RequireFromString("0.10")},
	}
}

// Apply validates a submitted code. Input is trimmed and uppercased
// before matching; empty input is a rejection like any other mismatch.
func (v *Validator) Apply(code string) Result {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	rule, ok := v.rules[normalized]
	if !ok {
		return Result{
			State:   domain.CouponState{Applied: false, Rate: decimal.Zero},
			Message: "Invalid coupon code.",
		}
	}

	return Result{
		State: domain.CouponState{
			Applied: true,
			Code:    rule.Code,
			Rate:    rule.Rate,
		},
		Message: fmt.Sprintf("Coupon '%s' applied!", rule.Code),
	}
}
