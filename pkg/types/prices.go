package types

import "github.com/pizzadelight/storefront/pkg/enums"

// SizePrices is the per-size price triple attached to pizzas and toppings.
type SizePrices struct {
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// For returns the price at the given size; unknown sizes price to zero.
func (p SizePrices) For(size enums.PizzaSize) float64 {
	switch size {
	case enums.PizzaSizeSmall:
		return p.Small
	case enums.PizzaSizeMedium:
		return p.Medium
	case enums.PizzaSizeLarge:
		return p.Large
	}
	return 0
}
