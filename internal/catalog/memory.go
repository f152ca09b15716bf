package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/trahman/smartshop/internal/domain"
)

// MemoryCatalog implements Catalog over an in-memory product list.
// Products keep their load order so listings are stable.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int]int // product id -> index into products
}

// NewMemoryCatalog creates a catalog populated with the given products.
// Later duplicates of an id are ignored.
func NewMemoryCatalog(products []domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		byID: make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, ok := c.byID[p.ID]; ok {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Get retrieves a product by id.
func (c *MemoryCatalog) Get(ctx context.Context, id int) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return nil, domain.NotFound("catalog.get", "product", strconv.Itoa(id))
	}

	p := c.products[idx]
	return &p, nil
}

// List returns products matching the filter, in catalog order.
func (c *MemoryCatalog) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories returns the distinct product categories in first-seen order.
func (c *MemoryCatalog) Categories(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}
