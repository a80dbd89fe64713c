package util

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol is used when no symbol is configured
const DefaultCurrencySymbol = "$"

// FormatCurrency renders d with two decimals behind the given symbol, e.g. "$730.97".
// Negative amounts keep the sign in front of the symbol.
func FormatCurrency(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Abs().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// CurrencyFormatter binds FormatCurrency to a symbol
func CurrencyFormatter(symbol string) func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		return FormatCurrency(symbol, d)
	}
}
