// Package ledger owns the user's spendable balance, persisted through a
// kv.Store so it survives restarts.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/kv"
)

// Ledger tracks a single balance under one store key.
//
// Writes go to the store first; the in-memory value only changes once the
// store accepted the write, so a failed persist never leaves memory ahead
// of disk. Sufficiency of a debit is NOT checked here; that guard lives
// with the checkout controller so it exists in exactly one place.
type Ledger struct {
	mu      sync.Mutex
	store   kv.Store
	key     string
	opening decimal.Decimal

	loaded  bool
	balance decimal.Decimal
}

// New creates a ledger persisting under key. opening is the balance used
// when the store has no value for the key yet.
func New(store kv.Store, key string, opening decimal.Decimal) *Ledger {
	return &Ledger{
		store:   store,
		key:     key,
		opening: opening,
	}
}

// Balance returns the current balance, loading it from the store on
// first use.
func (l *Ledger) Balance(ctx context.Context) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Credit adds amount to the balance and persists the new value.
func (l *Ledger) Credit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return l.persist(ctx, current.Add(amount))
}

// Debit subtracts amount from the balance and persists the new value.
// The caller guarantees amount <= balance before calling.
func (l *Ledger) Debit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return l.persist(ctx, current.Sub(amount))
}

// load returns the cached balance, reading the store on first call.
// Callers must hold l.mu.
func (l *Ledger) load(ctx context.Context) (decimal.Decimal, error) {
	if l.loaded {
		return l.balance, nil
	}

	raw, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			l.balance = l.opening
			l.loaded = true
			return l.balance, nil
		}
		return decimal.Zero, domain.Internal(err, "ledger.load", "failed to read balance")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.Internal(
			fmt.Errorf("stored balance %q: %w", raw, err),
			"ledger.load", "corrupt balance value",
		)
	}

	l.balance = value
	l.loaded = true
	return l.balance, nil
}

// persist writes next to the store, then adopts it in memory.
// Callers must hold l.mu.
func (l *Ledger) persist(ctx context.Context, next decimal.Decimal) (decimal.Decimal, error) {
	if err := l.store.Set(ctx, l.key, next.String()); err != nil {
		return decimal.Zero, domain.Internal(err, "ledger.persist", "failed to persist balance")
	}

	l.balance = next
	return l.balance, nil
}
