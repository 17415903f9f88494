package orders

import (
	"github.com/google/uuid"

	"github.com/pizzadelight/storefront/pkg/models"
	"github.com/pizzadelight/storefront/pkg/types"
)

// PlaceOrderInput carries the full placement payload. Items and total
// are expected to come from a frozen checkout snapshot.
type PlaceOrderInput struct {
	UserID   uuid.UUID          `json:"user_id" validate:"required"`
	Items    []models.CartItem  `json:"items" validate:"required,min=1"`
	Total    float64            `json:"total" validate:"gte=0"`
	Contact  types.ContactInfo  `json:"contact" validate:"required"`
	Delivery types.DeliveryInfo `json:"delivery" validate:"required"`
	Payment  types.PaymentInfo  `json:"payment" validate:"required"`
}
