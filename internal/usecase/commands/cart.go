package commands

import (
	"context"
	"log/slog"

	"stitchcart/internal/domain/cart"
	reqdto "stitchcart/internal/handler/dto/request"
	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/clock"
	"stitchcart/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrCatalogFailed   = errs.New("catalog lookup failed")
)

// CartCommands are the four cart mutations. Each one loads the slot for the
// given kind (creating an empty cart when none is persisted), applies the
// change, recomputes the snapshot and hands it back to the store. Invalid
// input surfaces as the cart domain's sentinel errors rather than silent
// no-ops.
type CartCommands interface {
	AddItem(ctx context.Context, store CartStore, req reqdto.AddCartItemRequest, kind cart.Kind, ownerID string) (*cart.Cart, error)
	SetItemQuantity(ctx context.Context, store CartStore, kind cart.Kind, itemID uuid.UUID, quantity int64, ownerID string) (*cart.Cart, error)
	RemoveItem(ctx context.Context, store CartStore, kind cart.Kind, itemID uuid.UUID, ownerID string) (*cart.Cart, error)
	Clear(ctx context.Context, store CartStore, kind cart.Kind, ownerID string) (*cart.Cart, error)
}

type cartUseCaseImpl struct {
	productRepo ProductRepository
	pricing     cart.Pricing
	unit        currency.Unit
	clock       clock.Clock
}

func NewCartCommands(
	productRepo ProductRepository,
	pricing cart.Pricing,
	unit currency.Unit,
	clock clock.Clock,
) CartCommands {
	return &cartUseCaseImpl{
		productRepo: productRepo,
		pricing:     pricing,
		unit:        unit,
		clock:       clock,
	}
}

func (u *cartUseCaseImpl) AddItem(
	ctx context.Context,
	store CartStore,
	req reqdto.AddCartItemRequest,
	kind cart.Kind,
	ownerID string,
) (*cart.Cart, error) {
	prod, err := u.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}

	c, err := u.loadOrCreate(store, kind, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(u.pricing, prod, req.Quantity, cart.Customizations(req.Customizations), u.clock.Now()); err != nil {
		return nil, err
	}

	u.persist(store, c)
	return c, nil
}

func (u *cartUseCaseImpl) SetItemQuantity(
	_ context.Context,
	store CartStore,
	kind cart.Kind,
	itemID uuid.UUID,
	quantity int64,
	ownerID string,
) (*cart.Cart, error) {
	c, err := u.loadOrCreate(store, kind, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.SetQuantity(u.pricing, itemID, quantity, u.clock.Now()); err != nil {
		return nil, err
	}

	u.persist(store, c)
	return c, nil
}

func (u *cartUseCaseImpl) RemoveItem(
	_ context.Context,
	store CartStore,
	kind cart.Kind,
	itemID uuid.UUID,
	ownerID string,
) (*cart.Cart, error) {
	c, err := u.loadOrCreate(store, kind, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(u.pricing, itemID, u.clock.Now()); err != nil {
		return nil, err
	}

	u.persist(store, c)
	return c, nil
}

func (u *cartUseCaseImpl) Clear(
	_ context.Context,
	store CartStore,
	kind cart.Kind,
	ownerID string,
) (*cart.Cart, error) {
	c, err := u.loadOrCreate(store, kind, ownerID)
	if err != nil {
		return nil, err
	}

	c.Clear(u.pricing, u.clock.Now())

	u.persist(store, c)
	return c, nil
}

// loadOrCreate treats an unreadable slot like an absent one: the shopper gets
// a fresh cart and the broken payload is overwritten on the next save.
func (u *cartUseCaseImpl) loadOrCreate(store CartStore, kind cart.Kind, ownerID string) (*cart.Cart, error) {
	if !kind.IsValid() {
		return nil, cart.ErrUnknownKind
	}

	c, err := store.Load(kind)
	if err != nil {
		slog.Warn("failed to load persisted cart, starting fresh", "kind", kind.String(), "error", err)
		c = nil
	}
	if c != nil {
		return c, nil
	}

	return cart.NewCart(ownerID, kind, u.unit, u.clock.Now())
}

// persist is fire-and-forget: a failed write is logged and the in-memory
// snapshot is still returned to the caller. Persisted and returned state may
// diverge until the next successful write.
func (u *cartUseCaseImpl) persist(store CartStore, c *cart.Cart) {
	if err := store.Save(c); err != nil {
		slog.Error("failed to persist cart snapshot", "kind", c.Kind.String(), "cart_id", c.ID, "error", err)
	}
}
