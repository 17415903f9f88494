package types

import "github.com/pizzadelight/storefront/pkg/enums"

// ContactInfo captures who placed an order.
type ContactInfo struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// DeliveryInfo captures where an order goes.
type DeliveryInfo struct {
	Address      string `json:"address" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

// PaymentInfo records the settlement intent attached at placement.
type PaymentInfo struct {
	Method enums.PaymentMethod `json:"method" validate:"required"`
	Status enums.PaymentStatus `json:"status,omitempty"`
}
