package commands

import (
	"context"

	"stitchcart/internal/domain/cart"
	"stitchcart/internal/domain/product"

	"github.com/google/uuid"
)

// ProductRepository reads catalog snapshots. The cart never writes products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (product.Product, error)
}

// CartStore owns the two persisted cart slots of one shopper. Implementations
// are request-scoped (cookie-backed in production, in-memory in tests).
// Load returns nil without error when no cart is persisted for the kind.
type CartStore interface {
	Load(kind cart.Kind) (*cart.Cart, error)
	Save(c *cart.Cart) error
}

// UserRepository reads account records for authentication.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CompanyName  *string
	IsActive     bool
}
