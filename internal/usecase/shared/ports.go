package shared

import "stitchcart/internal/domain/cart"

// CartReader is the read-only half of the cart slot store, used by queries.
// Load returns nil without error when nothing is persisted for the kind.
type CartReader interface {
	Load(kind cart.Kind) (*cart.Cart, error)
}
