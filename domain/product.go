// Package domain defines core business types and interfaces.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Category identifies the product variant
type Category string

const (
	CategoryBook        Category = "book"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
)

// ParseCategory maps a case-insensitive label to a Category
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryBook, CategoryElectronics, CategoryClothing:
		return c, nil
	default:
		return "", NewInvalidArgumentError("category", "unknown category", s)
	}
}

// Product is a purchasable item. Name and price are fixed at construction.
type Product interface {
	Name() string
	Price() decimal.Decimal
	Category() Category
	// CalculateDiscount returns price - price*percentage/100.
	// The percentage is not bounds-checked.
	CalculateDiscount(percentage decimal.Decimal) decimal.Decimal
	// CalculateCost returns the amount the product contributes to an order total.
	CalculateCost() decimal.Decimal
}

type baseProduct struct {
	name  string
	price decimal.Decimal
}

func newBaseProduct(name string, price decimal.Decimal) (baseProduct, error) {
	if name == "" {
		return baseProduct{}, NewInvalidArgumentError("name", "cannot be empty", name)
	}
	if price.IsNegative() {
		return baseProduct{}, NewInvalidArgumentError("price", "must be non-negative", price)
	}
	return baseProduct{name: name, price: price}, nil
}

func (b baseProduct) Name() string { return b.name }

func (b baseProduct) Price() decimal.Decimal { return b.price }

func (b baseProduct) CalculateDiscount(percentage decimal.Decimal) decimal.Decimal {
	return b.price.Sub(b.price.Mul(percentage).Div(hundred))
}

// Book is a product with a page count
type Book struct {
	baseProduct
	pages int
}

// NewBook constructs a Book
func NewBook(name string, price decimal.Decimal, pages int) (*Book, error) {
	base, err := newBaseProduct(name, price)
	if err != nil {
		return nil, err
	}
	return &Book{baseProduct: base, pages: pages}, nil
}

func (b *Book) Pages() int { return b.pages }

func (b *Book) Category() Category { return CategoryBook }

// CalculateCost returns the price; page count does not affect it yet.
func (b *Book) CalculateCost() decimal.Decimal { return b.price }

// Electronics is a product with a memory size in storage units
type Electronics struct {
	baseProduct
	memorySize int
}

// NewElectronics constructs an Electronics product
func NewElectronics(name string, price decimal.Decimal, memorySize int) (*Electronics, error) {
	base, err := newBaseProduct(name, price)
	if err != nil {
		return nil, err
	}
	return &Electronics{baseProduct: base, memorySize: memorySize}, nil
}

func (e *Electronics) MemorySize() int { return e.memorySize }

func (e *Electronics) Category() Category { return CategoryElectronics }

func (e *Electronics) CalculateCost() decimal.Decimal { return e.price }

// Clothing is a product with a free-text size label
type Clothing struct {
	baseProduct
	size string
}

// NewClothing constructs a Clothing product
func NewClothing(name string, price decimal.Decimal, size string) (*Clothing, error) {
	base, err := newBaseProduct(name, price)
	if err != nil {
		return nil, err
	}
	return &Clothing{baseProduct: base, size: size}, nil
}

func (c *Clothing) Size() string { return c.size }

func (c *Clothing) Category() Category { return CategoryClothing }

func (c *Clothing) CalculateCost() decimal.Decimal { return c.price }

// compile-time assertions
var (
	_ Product = (*Book)(nil)
	_ Product = (*Electronics)(nil)
	_ Product = (*Clothing)(nil)
)
