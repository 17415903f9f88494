package models

import "github.com/pizzadelight/storefront/pkg/types"

// Topping is an immutable catalog entry priced per pizza size.
type Topping struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     types.SizePrices `json:"price"`
	Available bool             `json:"available"`
}
