package product

import (
	"sort"
	"time"

	"stitchcart/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierPricing is one row of a product's volume price schedule.
// A nil MaxQuantity means the tier is open-ended.
type TierPricing struct {
	MinQuantity  int64           `json:"min_quantity"`
	MaxQuantity  *int64          `json:"max_quantity,omitempty"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

func (t TierPricing) Contains(quantity int64) bool {
	if quantity < t.MinQuantity {
		return false
	}
	return t.MaxQuantity == nil || quantity <= *t.MaxQuantity
}

// Product is a catalog snapshot as seen by the cart. The catalog owns the
// record; carts only denormalize it into their lines.
type Product struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Price        money.Money   `json:"price"`
	MOQ          int64         `json:"moq"`
	LeadTimeDays int32         `json:"lead_time_days"`
	Tiers        []TierPricing `json:"tiered_pricing,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Quote is a resolved unit price. Tier is nil when the base price applied.
type Quote struct {
	PricePerUnit money.Money
	Tier         *TierPricing
}

// ResolvePrice picks the unit price for the requested quantity. Tiers are
// evaluated from highest MinQuantity to lowest and the first tier whose range
// contains the quantity wins; with no match the base price applies.
// Overlapping ranges are not rejected here, the descending order makes the
// highest-MinQuantity tier win.
func (p Product) ResolvePrice(quantity int64) Quote {
	tiers := make([]TierPricing, len(p.Tiers))
	copy(tiers, p.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinQuantity > tiers[j].MinQuantity
	})

	for i := range tiers {
		if tiers[i].Contains(quantity) {
			tier := tiers[i]
			return Quote{
				PricePerUnit: money.New(tier.PricePerUnit, p.Price.Currency),
				Tier:         &tier,
			}
		}
	}

	return Quote{PricePerUnit: p.Price}
}
