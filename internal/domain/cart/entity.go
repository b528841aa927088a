package cart

import (
	"time"

	"stitchcart/internal/domain/money"
	"stitchcart/internal/domain/product"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// GuestOwnerID tags carts created before the buyer authenticates.
const GuestOwnerID = "guest"

// Item is one cart line with a denormalized product snapshot. All derived
// fields are recomputed whenever the line's quantity changes.
type Item struct {
	ID                uuid.UUID            `json:"id"`
	ProductID         uuid.UUID            `json:"product_id"`
	Product           product.Product      `json:"product"`
	Quantity          int64                `json:"quantity"`
	UnitPrice         money.Money          `json:"unit_price"`
	Subtotal          money.Money          `json:"subtotal"`
	AppliedTier       *product.TierPricing `json:"applied_tier,omitempty"`
	Customizations    Customizations       `json:"customizations,omitempty"`
	CustomizationKey  string               `json:"customization_key,omitempty"`
	MOQWarning        bool                 `json:"moq_warning"`
	EstimatedDelivery time.Time            `json:"estimated_delivery"`
	AddedAt           time.Time            `json:"added_at"`
}

// Cart is a full snapshot: items in insertion order plus every derived field.
// It is persisted whole after each mutation, never patched.
type Cart struct {
	ID            uuid.UUID   `json:"id"`
	OwnerID       string      `json:"owner_id"`
	Kind          Kind        `json:"type"`
	Currency      string      `json:"currency"`
	Items         []Item      `json:"items"`
	Subtotal      money.Money `json:"subtotal"`
	Tax           money.Money `json:"tax"`
	Shipping      money.Money `json:"shipping"`
	Total         money.Money `json:"total"`
	MOQViolations []string    `json:"moq_violations"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func NewCart(ownerID string, kind Kind, unit currency.Unit, now time.Time) (*Cart, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownKind
	}
	if ownerID == "" {
		ownerID = GuestOwnerID
	}

	return &Cart{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Kind:      kind,
		Currency:  unit.String(),
		Items:     []Item{},
		Subtotal:  money.Zero(unit),
		Tax:       money.Zero(unit),
		Shipping:  money.Zero(unit),
		Total:     money.Zero(unit),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddItem merges into an existing line when product and customization
// fingerprint match, otherwise appends a new line at the end. The affected
// line is re-priced against its new total quantity.
func (c *Cart) AddItem(pr Pricing, prod product.Product, quantity int64, customizations Customizations, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if prod.Price.Currency.String() != c.Currency {
		return ErrCurrencyMismatch
	}

	key := customizations.Fingerprint()

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == prod.ID && c.Items[i].CustomizationKey == key {
			c.Items[i].Quantity += quantity
			c.repriceLine(&c.Items[i], now)
			merged = true
			break
		}
	}

	if !merged {
		item := Item{
			ID:               uuid.New(),
			ProductID:        prod.ID,
			Product:          prod,
			Quantity:         quantity,
			Customizations:   customizations,
			CustomizationKey: key,
			AddedAt:          now,
		}
		c.repriceLine(&item, now)
		c.Items = append(c.Items, item)
	}

	c.recompute(pr, now)
	return nil
}

// RemoveItem deletes the line with the given id.
func (c *Cart) RemoveItem(pr Pricing, itemID uuid.UUID, now time.Time) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recompute(pr, now)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetQuantity replaces a line's quantity and re-prices it. Removal goes
// through RemoveItem; zero or negative quantities are rejected here.
func (c *Cart) SetQuantity(pr Pricing, itemID uuid.UUID, quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.repriceLine(&c.Items[i], now)
			c.recompute(pr, now)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Clear(pr Pricing, now time.Time) {
	c.Items = []Item{}
	c.recompute(pr, now)
}

// ItemCount is the display aggregate: sum of all line quantities.
func (c *Cart) ItemCount() int64 {
	var n int64
	for i := range c.Items {
		n += c.Items[i].Quantity
	}
	return n
}

func (c *Cart) repriceLine(item *Item, now time.Time) {
	quote := item.Product.ResolvePrice(item.Quantity)
	item.UnitPrice = quote.PricePerUnit
	item.Subtotal = quote.PricePerUnit.MulInt64(item.Quantity)
	item.AppliedTier = quote.Tier
	item.MOQWarning = item.Quantity < item.Product.MOQ
	item.EstimatedDelivery = now.AddDate(0, 0, int(item.Product.LeadTimeDays))
}

// recompute rebuilds every cart-level derived field from the item list.
// Pure in the items: running it twice with the same lines yields the same
// totals.
func (c *Cart) recompute(pr Pricing, now time.Time) {
	unit := c.unit()

	subtotal := money.Zero(unit)
	for i := range c.Items {
		subtotal = money.New(subtotal.Amount.Add(c.Items[i].Subtotal.Amount), unit)
	}

	tax := money.New(subtotal.Amount.Mul(pr.TaxRate).Round(2), unit)

	shipping := money.Zero(unit)
	if subtotal.Amount.Cmp(pr.FreeShippingThreshold) < 0 && len(c.Items) > 0 {
		shipping = money.New(pr.FlatShippingFee, unit)
	}

	total := subtotal.Amount.Add(tax.Amount).Add(shipping.Amount)

	c.Subtotal = subtotal
	c.Tax = tax
	c.Shipping = shipping
	c.Total = money.New(total, unit)
	c.MOQViolations = Violations(c.Items)
	c.UpdatedAt = now
}

func (c *Cart) unit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}
