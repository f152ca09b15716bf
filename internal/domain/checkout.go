package domain

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CHECKOUT DOMAIN TYPES
// =============================================================================

// CheckoutOutcome is the terminal result of a checkout attempt.
type CheckoutOutcome string

const (
	CheckoutSuccess             CheckoutOutcome = "success"
	CheckoutEmptyCart           CheckoutOutcome = "empty_cart"
	CheckoutInsufficientBalance CheckoutOutcome = "insufficient_balance"
)

// Rejected reports whether the outcome left all state untouched.
func (o CheckoutOutcome) Rejected() bool {
	return o != CheckoutSuccess
}

// CheckoutResult is the transient outcome of a checkout attempt.
// It is never persisted; callers decide how long to display Message.
type CheckoutResult struct {
	Outcome CheckoutOutcome `json:"outcome"`
	Message string          `json:"message"`

	// Total is the amount debited on success, or the amount that was
	// evaluated against the balance on rejection.
	Total decimal.Decimal `json:"total"`

	// Balance is the spendable balance after the attempt.
	Balance decimal.Decimal `json:"balance"`
}

// =============================================================================
// COMMANDS
// =============================================================================

// CommandKind identifies a cart mutation.
type CommandKind string

const (
	CmdAddItem       CommandKind = "add_item"
	CmdIncreaseQty   CommandKind = "increase_qty"
	CmdDecreaseQty   CommandKind = "decrease_qty"
	CmdRemoveItem    CommandKind = "remove_item"
	CmdApplyCoupon   CommandKind = "apply_coupon"
	CmdCreditBalance CommandKind = "credit_balance"
	CmdCheckout      CommandKind = "checkout"
)

// Command is a typed storefront event consumed by the session dispatcher.
// It decouples the core from any presentation layer: HTTP handlers (or any
// other frontend) only construct commands.
type Command struct {
	Kind      CommandKind
	ProductID int    // AddItem, IncreaseQty, DecreaseQty, RemoveItem
	Code      string // ApplyCoupon
}
