// Package store defines the datastore abstraction for seller-console.
// Business logic depends on the Store interface, never on concrete
// implementations, so it can be tested against mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/jadehome/seller-console/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SKUQuery defines optional filters for SKU listings.
type SKUQuery struct {
	// Search matches sku_code or product_name case-insensitively.
	Search *string
	// ActiveOnly defaults to true when nil.
	ActiveOnly *bool
	HasASIN    *bool
	Limit      int // default 50
	Offset     int
}

// Store defines all data access operations for seller-console.
type Store interface {
	// SKUs
	UpsertSKU(ctx context.Context, s *domain.SKU) error
	GetSKU(ctx context.Context, code string) (*domain.SKU, error)
	ListSKUs(ctx context.Context, q *SKUQuery) ([]domain.SKU, int, error)
	ListActiveSKUs(ctx context.Context) ([]domain.SKU, error)
	UpdateSKUASIN(ctx context.Context, code, asin string) error

	// Product attributes (amz_pd_kv)
	ListProductAttributes(ctx context.Context, skuCode, countryCode string) ([]domain.ProductAttribute, error)
	UpsertProductAttribute(ctx context.Context, a *domain.ProductAttribute) error
	DeleteProductAttribute(ctx context.Context, skuCode, countryCode, key string) error

	// Price change audit
	InsertPriceChange(ctx context.Context, pc *domain.PriceChange) error
	ListPriceChanges(ctx context.Context, skuCode string, limit int) ([]domain.PriceChange, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
