package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trahman/smartshop/internal/catalog"
	"github.com/trahman/smartshop/internal/domain"
	"github.com/trahman/smartshop/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() *catalog.MemoryCatalog {
	return catalog.NewMemoryCatalog([]domain.Product{
		{ID: 1, Title: "Backpack", Price: dec("109.95"), Category: "men's clothing", Image: "https://example.com/1.jpg"},
		{ID: 2, Title: "T-Shirt", Price: dec("22.30"), Category: "men's clothing"},
		{ID: 3, Title: "Watch", Price: dec("19.99"), Category: "jewelery"},
	})
}

func TestCart_AddNewLine(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].ProductID)
	assert.Equal(t, "Backpack", lines[0].Title)
	assert.True(t, lines[0].Price.Equal(dec("109.95")))
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, cart.TotalItemCount())
}

func TestCart_AddExistingIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 1))

	lines := cart.Lines()
	require.Len(t, lines, 1, "at most one line per product id")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCart_AddUnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	err := cart.Add(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.True(t, cart.Empty())
	assert.Equal(t, 0, cart.TotalItemCount())
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 3))
	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 2))
	require.NoError(t, cart.Add(ctx, 3)) // bumps quantity, not position

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 3, lines[0].ProductID)
	assert.Equal(t, 1, lines[1].ProductID)
	assert.Equal(t, 2, lines[2].ProductID)
}

func TestCart_Increase(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	cart.Increase(1)

	assert.Equal(t, 2, cart.TotalItemCount())

	// Increase on an absent line is a no-op.
	cart.Increase(99)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCart_DecreaseAboveOne(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	cart.Increase(1)
	cart.Decrease(1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_DecreaseAtOneRemovesLine(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	cart.Decrease(1)

	assert.True(t, cart.Empty(), "decrease at quantity 1 removes the line, never leaves quantity 0")
	assert.Equal(t, 0, cart.TotalItemCount())
}

func TestCart_RemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	cart.Increase(1)
	require.NoError(t, cart.Add(ctx, 2))

	cart.Remove(1)
	after := cart.Lines()

	cart.Remove(1) // second remove changes nothing
	assert.Equal(t, after, cart.Lines())
	assert.Equal(t, 1, cart.TotalItemCount())
}

func TestCart_Clear(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 2))
	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.Empty(t, cart.Lines())
}

func TestCart_CountMatchesLineQuantities(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	// An arbitrary mutation sequence; the invariant must hold throughout.
	mutations := []func(){
		func() { cart.Add(ctx, 1) },
		func() { cart.Add(ctx, 2) },
		func() { cart.Increase(1) },
		func() { cart.Increase(1) },
		func() { cart.Decrease(2) },
		func() { cart.Add(ctx, 3) },
		func() { cart.Remove(1) },
		func() { cart.Decrease(3) },
		func() { cart.Add(ctx, 99) },
	}

	for _, mutate := range mutations {
		mutate()

		sum := 0
		for _, line := range cart.Lines() {
			require.GreaterOrEqual(t, line.Quantity, 1, "no line may drop below quantity 1")
			sum += line.Quantity
		}
		assert.Equal(t, sum, cart.TotalItemCount())
	}
}

func TestCart_SnapshotSurvivesCatalogAbsence(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCart(testCatalog())

	require.NoError(t, cart.Add(ctx, 3))

	// The line keeps the add-time snapshot of the product fields.
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Watch", lines[0].Title)
	assert.True(t, lines[0].Price.Equal(dec("19.99")))
	assert.Equal(t, "jewelery", lines[0].Category)
}
