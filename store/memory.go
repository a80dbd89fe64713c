// Package store provides product catalog implementations for the order system.
package store

import (
	"context"
	"errors"
	"fmt"
	"retail_orders/domain"
	"sort"
	"sync"
)

// InMemoryCatalog is a thread-safe in-memory domain.ProductCatalog
type InMemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
}

// NewInMemoryCatalog constructs a new InMemoryCatalog
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{
		products: make(map[string]domain.Product),
	}
}

// compile-time assertion that InMemoryCatalog implements domain.ProductCatalog
var _ domain.ProductCatalog = (*InMemoryCatalog)(nil)

func (c *InMemoryCatalog) Add(ctx context.Context, product domain.Product) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if product == nil {
		return domain.NewInvalidArgumentError("product", "cannot be nil", nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := product.Name()
	if _, exists := c.products[name]; exists {
		return domain.NewDuplicateProductError(name)
	}
	c.products[name] = product
	c.order = append(c.order, name)
	return nil
}

func (c *InMemoryCatalog) Get(ctx context.Context, name string) (domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[name]
	if !ok {
		return nil, domain.NewProductNotFoundError(name)
	}
	return p, nil
}

func (c *InMemoryCatalog) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0, len(c.order))
	for _, name := range c.order {
		p := c.products[name]
		if filter.Category != "" && p.Category() != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price().LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price().GreaterThan(*filter.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	desc := filter.Order == "desc"
	switch filter.SortBy {
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Name() > out[j].Name()
			}
			return out[i].Name() < out[j].Name()
		})
	case "price":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Price().GreaterThan(out[j].Price())
			}
			return out[i].Price().LessThan(out[j].Price())
		})
	}

	return out, nil
}

// BulkImport adds every product it can and returns the joined errors of the rest
func (c *InMemoryCatalog) BulkImport(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	for i, p := range products {
		if err := c.Add(ctx, p); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			errs = append(errs, fmt.Errorf("product %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
