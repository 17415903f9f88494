package models

import "time"

// CheckoutSnapshot freezes a cart between "proceed to checkout" and
// "order placed or abandoned".
type CheckoutSnapshot struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

// Clone returns a deep copy of the snapshot.
func (s CheckoutSnapshot) Clone() CheckoutSnapshot {
	out := s
	out.Items = CloneCartItems(s.Items)
	return out
}
