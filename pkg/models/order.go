package models

import (
	"github.com/google/uuid"

	"github.com/pizzadelight/storefront/pkg/enums"
	"github.com/pizzadelight/storefront/pkg/types"
)

// Order is an entry in the append-only ledger. Everything except Status
// is frozen at placement. CreatedAt is kept as the serialized RFC 3339
// string the ledger stores; analytics drops entries it cannot parse.
type Order struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Items     []CartItem         `json:"items"`
	Total     float64            `json:"total"`
	Status    enums.OrderStatus  `json:"status"`
	CreatedAt string             `json:"created_at"`
	Contact   types.ContactInfo  `json:"contact"`
	Delivery  types.DeliveryInfo `json:"delivery"`
	Payment   types.PaymentInfo  `json:"payment"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	out.Items = CloneCartItems(o.Items)
	return out
}
