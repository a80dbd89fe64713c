package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ListFilter allows filtering and sorting results from List
type ListFilter struct {
	Category Category
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string // "name" or "price"
	Order    string // "asc" or "desc"
}

// ProductCatalog holds the products orders can be built from, keyed by name
type ProductCatalog interface {
	Add(ctx context.Context, product Product) error
	Get(ctx context.Context, name string) (Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	BulkImport(ctx context.Context, products []Product) error
}
