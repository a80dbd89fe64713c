package store

import (
	"retail_orders/domain"

	"github.com/shopspring/decimal"
)

// ProductRecord is the JSON shape of a product in catalog files and CLI output
type ProductRecord struct {
	Category   domain.Category  `json:"category"`
	Name       string           `json:"name"`
	Price      decimal.Decimal  `json:"price"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	Pages      int              `json:"pages,omitempty"`
	MemorySize int              `json:"memory_size,omitempty"`
	Size       string           `json:"size,omitempty"`
}

// ToProduct builds the product variant named by Category
func (r ProductRecord) ToProduct() (domain.Product, error) {
	category, err := domain.ParseCategory(string(r.Category))
	if err != nil {
		return nil, err
	}
	var p domain.Product
	switch category {
	case domain.CategoryBook:
		b, err := domain.NewBook(r.Name, r.Price, r.Pages)
		if err != nil {
			return nil, err
		}
		p = b
	case domain.CategoryElectronics:
		e, err := domain.NewElectronics(r.Name, r.Price, r.MemorySize)
		if err != nil {
			return nil, err
		}
		p = e
	default:
		c, err := domain.NewClothing(r.Name, r.Price, r.Size)
		if err != nil {
			return nil, err
		}
		p = c
	}
	return p, nil
}

// RecordOf flattens a product into a ProductRecord, including its cost
func RecordOf(p domain.Product) ProductRecord {
	cost := p.CalculateCost()
	r := ProductRecord{
		Category: p.Category(),
		Name:     p.Name(),
		Price:    p.Price(),
		Cost:     &cost,
	}
	switch v := p.(type) {
	case *domain.Book:
		r.Pages = v.Pages()
	case *domain.Electronics:
		r.MemorySize = v.MemorySize()
	case *domain.Clothing:
		r.Size = v.Size()
	}
	return r
}
