// Package catalog owns the read-only product catalog. Products are loaded
// once at startup (from a fakestore-compatible API or a local seed file)
// and served from memory; the cart only ever reads from it.
package catalog

import (
	"context"

	"github.com/trahman/smartshop/internal/domain"
)

// Catalog provides read access to the product list.
type Catalog interface {
	// Get retrieves a product by id.
	// Returns domain.ErrProductNotFound if the id is unknown.
	Get(ctx context.Context, id int) (*domain.Product, error)

	// List returns products matching the filter, in catalog order.
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	// Categories returns the distinct product categories in first-seen order.
	Categories(ctx context.Context) ([]string, error)
}
