package models

import "github.com/pizzadelight/storefront/pkg/types"

// Pizza is an immutable catalog entry.
type Pizza struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Image             string           `json:"image"`
	Price             types.SizePrices `json:"price"`
	AvailableToppings []string         `json:"available_toppings"`
	Tags              []string         `json:"tags,omitempty"`
	SpiceLevel        *int             `json:"spice_level,omitempty"`
	Vegetarian        *bool            `json:"vegetarian,omitempty"`
}
