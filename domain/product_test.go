package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewProduct_Validation(t *testing.T) {
	constructors := map[string]func(name string, price decimal.Decimal) (Product, error){
		"book": func(name string, price decimal.Decimal) (Product, error) {
			return NewBook(name, price, 180)
		},
		"electronics": func(name string, price decimal.Decimal) (Product, error) {
			return NewElectronics(name, price, 128)
		},
		"clothing": func(name string, price decimal.Decimal) (Product, error) {
			return NewClothing(name, price, "M")
		},
	}

	tests := []struct {
		name     string
		product  string
		price    decimal.Decimal
		errField string
	}{
		{name: "valid", product: "Item", price: dec("10.99")},
		{name: "zero price", product: "Freebie", price: decimal.Zero},
		{name: "empty name", product: "", price: dec("1"), errField: "name"},
		{name: "negative price", product: "Item", price: dec("-0.01"), errField: "price"},
	}

	for kind, build := range constructors {
		for _, tt := range tests {
			t.Run(kind+"/"+tt.name, func(t *testing.T) {
				p, err := build(tt.product, tt.price)
				if tt.errField == "" {
					require.NoError(t, err)
					assert.Equal(t, tt.product, p.Name())
					assert.True(t, tt.price.Equal(p.CalculateCost()), "cost should equal price")
					return
				}
				require.Error(t, err)
				var iae *InvalidArgumentError
				require.ErrorAs(t, err, &iae)
				assert.Equal(t, tt.errField, iae.Field)
			})
		}
	}
}

// Constructors return a nil pointer on failure.
func TestNewBook_ErrorReturnsNil(t *testing.T) {
	b, err := NewBook("", dec("1"), 10)
	assert.Nil(t, b)
	assert.True(t, IsInvalidArgumentError(err))
}

func TestCalculateDiscount(t *testing.T) {
	book, err := NewBook("The Great Gatsby", dec("10.99"), 180)
	require.NoError(t, err)

	cases := []struct {
		percentage string
		want       string
	}{
		{"0", "10.99"},
		{"10", "9.891"},
		{"50", "5.495"},
		{"100", "0"},
		{"150", "-5.495"},
		{"-10", "12.089"},
	}
	for _, tc := range cases {
		t.Run(tc.percentage, func(t *testing.T) {
			got := book.CalculateDiscount(dec(tc.percentage))
			assert.True(t, dec(tc.want).Equal(got), "want %s, got %s", tc.want, got)
		})
	}

	assert.True(t, dec("10.99").Equal(book.Price()), "discount must not change the price")
}

func TestVariantAttributes(t *testing.T) {
	book, err := NewBook("The Great Gatsby", dec("10.99"), 180)
	require.NoError(t, err)
	phone, err := NewElectronics("Smartphone", dec("699.99"), 128)
	require.NoError(t, err)
	shirt, err := NewClothing("T-shirt", dec("19.99"), "M")
	require.NoError(t, err)

	assert.Equal(t, 180, book.Pages())
	assert.Equal(t, CategoryBook, book.Category())
	assert.Equal(t, 128, phone.MemorySize())
	assert.Equal(t, CategoryElectronics, phone.Category())
	assert.Equal(t, "M", shirt.Size())
	assert.Equal(t, CategoryClothing, shirt.Category())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Electronics ")
	require.NoError(t, err)
	assert.Equal(t, CategoryElectronics, c)

	_, err = ParseCategory("toys")
	assert.True(t, IsInvalidArgumentError(err))
}
