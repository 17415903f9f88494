package blob

import "context"

// Well-known state keys, one per persisted store. They mirror the
// storage names the web client used so a migrated deployment keeps its
// data.
const (
	KeyCart     = "pizza-cart-storage"
	KeyOrders   = "pizza-order-storage"
	KeyCheckout = "pizza-checkout-storage"
	KeyAuth     = "pizza-auth-storage"
)

// Store is the persistence port: a namespaced key-value blob store the
// domain stores write their full serialized state to after every
// mutation and read once at startup to rehydrate.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}
