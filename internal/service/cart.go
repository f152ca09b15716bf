package service

import (
	"context"

	"github.com/trahman/smartshop/internal/catalog"
	"github.com/trahman/smartshop/internal/domain"
)

// Cart owns the ordered collection of cart lines for one session.
//
// Invariants: at most one line per product id, every line has quantity >= 1,
// and lines keep insertion order for stable display. Cart is not safe for
// concurrent use on its own; the owning Session serializes access.
type Cart struct {
	catalog catalog.Catalog
	lines   []domain.CartLine
}

// NewCart creates an empty cart reading products from the given catalog.
func NewCart(cat catalog.Catalog) *Cart {
	return &Cart{catalog: cat}
}

// Add puts one unit of the product in the cart. If a line for the product
// already exists its quantity grows by one; otherwise a new line is
// appended with a snapshot of the product's fields. An unknown product id
// leaves the cart untouched and returns domain.ErrProductNotFound.
func (c *Cart) Add(ctx context.Context, productID int) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return nil
		}
	}

	product, err := c.catalog.Get(ctx, productID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	c.lines = append(c.lines, domain.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Category:  product.Category,
		Image:     product.Image,
		Quantity:  1,
	})
	return nil
}

// Increase increments the matching line's quantity by one.
// No-op if the product is not in the cart.
func (c *Cart) Increase(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
}

// Decrease decrements the matching line's quantity by one. A line at
// quantity 1 is removed entirely; a zero-quantity line is never kept.
// No-op if the product is not in the cart.
func (c *Cart) Decrease(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			} else {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Remove deletes the matching line regardless of quantity.
// Idempotent: removing an absent product is a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used on successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalItemCount returns the sum of all line quantities.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
