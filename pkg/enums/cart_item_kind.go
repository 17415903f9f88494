package enums

import "fmt"

// CartItemKind discriminates the payload carried by a cart line item.
type CartItemKind string

const (
	CartItemKindPizza CartItemKind = "pizza"
	CartItemKindDrink CartItemKind = "drink"
)

var validCartItemKinds = []CartItemKind{
	CartItemKindPizza,
	CartItemKindDrink,
}

// String implements fmt.Stringer.
func (k CartItemKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known CartItemKind.
func (k CartItemKind) IsValid() bool {
	for _, candidate := range validCartItemKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseCartItemKind converts raw input into a CartItemKind.
func ParseCartItemKind(value string) (CartItemKind, error) {
	for _, candidate := range validCartItemKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart item kind %q", value)
}
