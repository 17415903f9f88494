package cart

import "github.com/pizzadelight/storefront/pkg/enums"

// AddPizzaInput is the payload for a configured pizza line.
type AddPizzaInput struct {
	PizzaID  string          `json:"pizza_id" validate:"required"`
	Size     enums.PizzaSize `json:"size" validate:"required"`
	Toppings []string        `json:"toppings"`
	Quantity int             `json:"quantity" validate:"gte=1"`
}

// AddDrinkInput is the payload for a drink line.
type AddDrinkInput struct {
	DrinkID  string `json:"drink_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}
