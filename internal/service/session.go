package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trahman/smartshop/internal/catalog"
	"github.com/trahman/smartshop/internal/coupon"
	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/kv"
	"github.com/trahman/smartshop/internal/ledger"
	"github.com/trahman/smartshop/internal/pricing"
)

// Session owns one visitor's mutable storefront state: cart, coupon and
// balance. Sessions share no mutable state with each other. All
// mutations go through Dispatch, which serializes access with the
// session lock.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      *Cart
	coupon    domain.CouponState
	validator *coupon.Validator
	engine    *pricing.Engine
	ledger    *ledger.Ledger
	checkout  *Controller
	topUp     decimal.Decimal
}

// DispatchResult is what every command returns: the cart summary as it
// stands after the command, the current balance, and for the commands
// that produce one, a message or checkout result.
type DispatchResult struct {
	Summary domain.CartSummary `json:"summary"`
	Balance decimal.Decimal    `json:"balance"`

	// CanCheckout is false when the cart is empty or the quoted total
	// exceeds the balance (the storefront disables the checkout button).
	CanCheckout bool `json:"can_checkout"`

	// Message carries coupon feedback for ApplyCoupon commands.
	Message string `json:"message,omitempty"`

	// Checkout is set only for Checkout commands.
	Checkout *domain.CheckoutResult `json:"checkout,omitempty"`
}

// Dispatch applies a typed storefront command to the session.
//
// Commands never panic across this boundary: recoverable conditions
// (unknown product, invalid coupon, checkout rejections) come back inside
// the result or as coded domain errors. Only infrastructure failures
// (balance persistence) surface as internal errors.
func (s *Session) Dispatch(ctx context.Context, cmd domain.Command) (*DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		message  string
		checkout *domain.CheckoutResult
	)

	switch cmd.Kind {
	case domain.CmdAddItem:
		if err := s.cart.Add(ctx, cmd.ProductID); err != nil {
			return nil, err
		}

	case domain.CmdIncreaseQty:
		s.cart.Increase(cmd.ProductID)

	case domain.CmdDecreaseQty:
		s.cart.Decrease(cmd.ProductID)

	case domain.CmdRemoveItem:
		s.cart.Remove(cmd.ProductID)

	case domain.CmdApplyCoupon:
		result := s.validator.Apply(cmd.Code)
		s.coupon = result.State
		message = result.Message

	case domain.CmdCreditBalance:
		if _, err := s.ledger.Credit(ctx, s.topUp); err != nil {
			return nil, err
		}

	case domain.CmdCheckout:
		result, err := s.checkout.Checkout(ctx, s.cart, &s.coupon)
		if err != nil {
			return nil, err
		}
		checkout = result

	default:
		return nil, domain.Errorf(domain.EINVALID, "session.dispatch", "unknown command kind: %s", cmd.Kind)
	}

	result, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result.Message = message
	result.Checkout = checkout
	return result, nil
}

// Summary returns the session's current cart summary and balance without
// mutating anything.
func (s *Session) Summary(ctx context.Context) (*DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(ctx)
}

// snapshot recomputes the derived read model. The quote is never cached:
// it is derived from cart and coupon state on every call so it can't go
// stale across mutations. Callers must hold s.mu.
func (s *Session) snapshot(ctx context.Context) (*DispatchResult, error) {
	lines := s.cart.Lines()
	quote := s.engine.Quote(lines, s.coupon)

	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}

	return &DispatchResult{
		Summary: domain.CartSummary{
			Lines:     lines,
			ItemCount: s.cart.TotalItemCount(),
			Coupon:    s.coupon,
			Quote:     quote,
		},
		Balance:     balance,
		CanCheckout: !s.cart.Empty() && !quote.Total.GreaterThan(balance),
	}, nil
}

// =============================================================================
// REGISTRY
// =============================================================================

// RegistryConfig carries the per-session collaborators and constants.
type RegistryConfig struct {
	Catalog catalog.Catalog
	Store   kv.Store
	Fees    pricing.Fees
	Rules   []coupon.Rule

	// OpeningBalance seeds a session's ledger when the store holds no
	// balance for it yet.
	OpeningBalance decimal.Decimal

	// TopUpAmount is credited per CreditBalance command.
	TopUpAmount decimal.Decimal

	// BalanceKeyPrefix namespaces ledger keys in the shared store.
	// Defaults to "balance:".
	BalanceKeyPrefix string
}

// Registry hands out isolated sessions keyed by id. It replaces the
// page-level globals of a browser storefront: one Cart plus one Ledger
// binding per session key, constructed on first touch.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      RegistryConfig
}

// NewRegistry creates a session registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.BalanceKeyPrefix == "" {
		cfg.BalanceKeyPrefix = "balance:"
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
	}
}

// GetOrCreate returns the session for id, creating it (and minting a new
// id when the given one is empty) on first touch. The returned id is the
// one the caller should hand back to the client.
func (r *Registry) GetOrCreate(id string) *Session {
	if id != "" {
		r.mu.RLock()
		s, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return s
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	} else if s, ok := r.sessions[id]; ok {
		return s
	}

	s := r.newSession(id)
	r.sessions[id] = s
	return s
}

// Get returns the session for id, or nil if it doesn't exist.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// newSession wires one session's collaborators. Callers must hold r.mu.
func (r *Registry) newSession(id string) *Session {
	engine := pricing.NewEngine(r.cfg.Fees)
	led := ledger.New(r.cfg.Store, r.cfg.BalanceKeyPrefix+id, r.cfg.OpeningBalance)

	return &Session{
		ID:        id,
		cart:      NewCart(r.cfg.Catalog),
		validator: coupon.NewValidator(r.cfg.Rules),
		engine:    engine,
		ledger:    led,
		checkout:  NewController(engine, led),
		topUp:     r.cfg.TopUpAmount,
	}
}
