package queries

import (
	"context"

	"stitchcart/internal/domain/cart"
	"stitchcart/internal/usecase/shared"

	"golang.org/x/text/currency"
)

// CartQueries reads a cart slot for display. A kind with nothing persisted
// yields an empty view; nothing is written on the read path.
type CartQueries interface {
	Get(ctx context.Context, store shared.CartReader, kind cart.Kind, ownerID string) (*CartView, error)
}

type cartQueriesImpl struct {
	unit currency.Unit
}

func NewCartQueries(unit currency.Unit) CartQueries {
	return &cartQueriesImpl{unit: unit}
}

func (q *cartQueriesImpl) Get(_ context.Context, store shared.CartReader, kind cart.Kind, ownerID string) (*CartView, error) {
	if !kind.IsValid() {
		return nil, cart.ErrUnknownKind
	}

	c, err := store.Load(kind)
	if err != nil || c == nil {
		return emptyCartView(kind, ownerID, q.unit), nil
	}

	return NewCartView(c), nil
}

func NewCartView(c *cart.Cart) *CartView {
	items := make([]CartItemView, 0, len(c.Items))
	for i := range c.Items {
		items = append(items, newCartItemView(&c.Items[i]))
	}

	violations := c.MOQViolations
	if violations == nil {
		violations = []string{}
	}

	return &CartView{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		Kind:          c.Kind.String(),
		Currency:      c.Currency,
		Items:         items,
		ItemCount:     c.ItemCount(),
		Subtotal:      c.Subtotal.Amount.String(),
		Tax:           c.Tax.Amount.String(),
		Shipping:      c.Shipping.Amount.String(),
		Total:         c.Total.Amount.String(),
		MOQViolations: violations,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func newCartItemView(item *cart.Item) CartItemView {
	view := CartItemView{
		ID:                item.ID,
		ProductID:         item.ProductID,
		Title:             item.Product.Title,
		Quantity:          item.Quantity,
		UnitPrice:         item.UnitPrice.Amount.String(),
		Subtotal:          item.Subtotal.Amount.String(),
		Customizations:    item.Customizations,
		MOQ:               item.Product.MOQ,
		MOQWarning:        item.MOQWarning,
		EstimatedDelivery: item.EstimatedDelivery,
		AddedAt:           item.AddedAt,
	}
	if item.AppliedTier != nil {
		min := item.AppliedTier.MinQuantity
		view.TierMinQuantity = &min
	}
	return view
}

func emptyCartView(kind cart.Kind, ownerID string, unit currency.Unit) *CartView {
	if ownerID == "" {
		ownerID = cart.GuestOwnerID
	}
	return &CartView{
		OwnerID:       ownerID,
		Kind:          kind.String(),
		Currency:      unit.String(),
		Items:         []CartItemView{},
		Subtotal:      "0",
		Tax:           "0",
		Shipping:      "0",
		Total:         "0",
		MOQViolations: []string{},
	}
}
