package store

import (
	"context"
	"fmt"
	"retail_orders/domain"

	"github.com/shopspring/decimal"
)

// NewCatalog constructs a domain.ProductCatalog by kind: "memory" or "file".
// The memory catalog is seeded with SampleProducts; the file catalog is loaded from path.
func NewCatalog(ctx context.Context, kind, path string) (domain.ProductCatalog, error) {
	switch kind {
	case "memory", "mem":
		c := NewInMemoryCatalog()
		if err := c.BulkImport(ctx, SampleProducts()); err != nil {
			return nil, err
		}
		return c, nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file catalog")
		}
		return NewFileCatalog(ctx, path)
	default:
		return nil, fmt.Errorf("unknown catalog kind: %s", kind)
	}
}

// SampleProducts returns a book, a smartphone and a T-shirt
func SampleProducts() []domain.Product {
	return []domain.Product{
		mustProduct(domain.NewBook("The Great Gatsby", decimal.RequireFromString("10.99"), 180)),
		mustProduct(domain.NewElectronics("Smartphone", decimal.RequireFromString("699.99"), 128)),
		mustProduct(domain.NewClothing("T-shirt", decimal.RequireFromString("19.99"), "M")),
	}
}

// mustProduct panics on a constructor error, like decimal.RequireFromString
func mustProduct(p domain.Product, err error) domain.Product {
	if err != nil {
		panic(err)
	}
	return p
}
