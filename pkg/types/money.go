package types

import "github.com/shopspring/decimal"

// FormatAmount renders a float total with the fixed 2-decimal display
// precision used across the storefront. Totals themselves stay float64.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
