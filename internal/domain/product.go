package domain

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// Rating aggregates customer review data for a product.
type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

// Product represents a catalog product offering.
// Products are immutable once loaded; the catalog is the only owner.
type Product struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	Rating   Rating          `json:"rating"`
}

// ProductFilter narrows catalog listings.
// Zero values match everything.
type ProductFilter struct {
	// Category matches exactly when non-empty.
	Category string

	// Search matches case-insensitively against the product title.
	Search string
}
