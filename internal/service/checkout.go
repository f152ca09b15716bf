package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/ledger"
	"github.com/trahman/smartshop/internal/pricing"
)

// Phase is the checkout controller's state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseEvaluating Phase = "evaluating"
	PhaseSuccess    Phase = "success"
	PhaseRejected   Phase = "rejected"
)

// Controller orchestrates checkout: it is the single authority for the
// cart-not-empty and sufficient-balance guards, and it owns the
// debit-then-clear sequence. The ledger never re-validates sufficiency.
type Controller struct {
	engine *pricing.Engine
	ledger *ledger.Ledger
	phase  Phase
}

// NewController creates a checkout controller.
func NewController(engine *pricing.Engine, ledger *ledger.Ledger) *Controller {
	return &Controller{
		engine: engine,
		ledger: ledger,
		phase:  PhaseIdle,
	}
}

// Phase returns the controller's current state. A settled controller
// reports the last outcome (PhaseSuccess or PhaseRejected) until the
// next attempt re-enters the machine; a settled controller is always
// ready to check out again, so the return edge to PhaseIdle is taken
// implicitly by the next Checkout call. Only a failed balance persist
// parks the controller on PhaseIdle directly.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Checkout finalizes the cart into a balance debit.
//
// Rejections (empty cart, insufficient balance) mutate nothing. On
// success the debit, the cart clear and the coupon reset happen together
// under the session's lock, with no partial application. A failed
// balance persist aborts before any state change and surfaces as an
// error rather than an outcome.
func (c *Controller) Checkout(ctx context.Context, cart *Cart, coupon *domain.CouponState) (*domain.CheckoutResult, error) {
	c.phase = PhaseEvaluating

	quote := c.engine.Quote(cart.Lines(), *coupon)

	balance, err := c.ledger.Balance(ctx)
	if err != nil {
		c.phase = PhaseIdle
		return nil, err
	}

	if cart.Empty() {
		c.phase = PhaseRejected
		return &domain.CheckoutResult{
			Outcome: domain.CheckoutEmptyCart,
			Message: "Your cart is empty!",
			Total:   quote.Total,
			Balance: balance,
		}, nil
	}

	if quote.Total.GreaterThan(balance) {
		c.phase = PhaseRejected
		return &domain.CheckoutResult{
			Outcome: domain.CheckoutInsufficientBalance,
			Message: "Insufficient balance!",
			Total:   quote.Total,
			Balance: balance,
		}, nil
	}

	newBalance, err := c.ledger.Debit(ctx, quote.Total)
	if err != nil {
		// Debit failed to persist: cart and coupon stay intact.
		c.phase = PhaseIdle
		return nil, err
	}

	cart.Clear()
	*coupon = domain.CouponState{Applied: false, Rate: decimal.Zero}

	c.phase = PhaseSuccess
	return &domain.CheckoutResult{
		Outcome: domain.CheckoutSuccess,
		Message: "Order placed successfully!",
		Total:   quote.Total,
		Balance: newBalance,
	}, nil
}
