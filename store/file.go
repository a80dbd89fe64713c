package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"retail_orders/domain"
)

// ParseProducts decodes a JSON array or NDJSON stream of ProductRecord
func ParseProducts(b []byte) ([]domain.Product, error) {
	btrim := bytes.TrimSpace(b)
	if len(btrim) == 0 {
		return nil, nil
	}

	var records []ProductRecord

	// JSON array
	if btrim[0] == '[' {
		if err := json.Unmarshal(btrim, &records); err != nil {
			return nil, err
		}
	} else {
		// NDJSON or single JSON object
		scanner := bufio.NewScanner(bytes.NewReader(btrim))
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var r ProductRecord
			if err := json.Unmarshal(line, &r); err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	products := make([]domain.Product, 0, len(records))
	var errs []error
	for i, r := range records {
		p, err := r.ToProduct()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		products = append(products, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return products, nil
}

// LoadProducts reads and parses a catalog file
func LoadProducts(path string) ([]domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProducts(b)
}

// NewFileCatalog constructs an in-memory catalog seeded from the file at path
func NewFileCatalog(ctx context.Context, path string) (*InMemoryCatalog, error) {
	products, err := LoadProducts(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	c := NewInMemoryCatalog()
	if err := c.BulkImport(ctx, products); err != nil {
		return nil, err
	}
	return c, nil
}
