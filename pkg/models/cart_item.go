package models

import (
	"github.com/google/uuid"

	"github.com/pizzadelight/storefront/pkg/enums"
)

// PizzaSelection is a configured pizza line: base pizza, chosen size,
// selected topping ids, quantity.
type PizzaSelection struct {
	PizzaID  string          `json:"pizza_id"`
	Size     enums.PizzaSize `json:"size"`
	Toppings []string        `json:"toppings"`
	Quantity int             `json:"quantity"`
}

// DrinkSelection is a drink line.
type DrinkSelection struct {
	DrinkID  string `json:"drink_id"`
	Quantity int    `json:"quantity"`
}

// CartItem is a tagged union: Kind selects which payload is populated.
// The constructors are the only way a well-formed item is built, so
// exactly one payload is non-nil per value.
type CartItem struct {
	ID    uuid.UUID          `json:"id"`
	Kind  enums.CartItemKind `json:"kind"`
	Pizza *PizzaSelection    `json:"pizza,omitempty"`
	Drink *DrinkSelection    `json:"drink,omitempty"`
}

// NewPizzaCartItem builds a pizza line with a fresh identifier.
func NewPizzaCartItem(pizzaID string, size enums.PizzaSize, toppings []string, quantity int) CartItem {
	selected := make([]string, len(toppings))
	copy(selected, toppings)
	return CartItem{
		ID:   uuid.New(),
		Kind: enums.CartItemKindPizza,
		Pizza: &PizzaSelection{
			PizzaID:  pizzaID,
			Size:     size,
			Toppings: selected,
			Quantity: quantity,
		},
	}
}

// NewDrinkCartItem builds a drink line with a fresh identifier.
func NewDrinkCartItem(drinkID string, quantity int) CartItem {
	return CartItem{
		ID:   uuid.New(),
		Kind: enums.CartItemKindDrink,
		Drink: &DrinkSelection{
			DrinkID:  drinkID,
			Quantity: quantity,
		},
	}
}

// Quantity returns the line quantity regardless of kind.
func (i CartItem) Quantity() int {
	switch i.Kind {
	case enums.CartItemKindPizza:
		if i.Pizza != nil {
			return i.Pizza.Quantity
		}
	case enums.CartItemKindDrink:
		if i.Drink != nil {
			return i.Drink.Quantity
		}
	}
	return 0
}

// Clone returns a deep copy, including the topping id list.
func (i CartItem) Clone() CartItem {
	out := CartItem{ID: i.ID, Kind: i.Kind}
	if i.Pizza != nil {
		pizza := *i.Pizza
		pizza.Toppings = make([]string, len(i.Pizza.Toppings))
		copy(pizza.Toppings, i.Pizza.Toppings)
		out.Pizza = &pizza
	}
	if i.Drink != nil {
		drink := *i.Drink
		out.Drink = &drink
	}
	return out
}

// CloneCartItems deep-copies a line item sequence preserving order.
func CloneCartItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}
