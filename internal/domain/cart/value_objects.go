package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// Customizations is the opaque key-value bag attached to a line
// (color, fabric, print placement and so on). Two lines for the same product
// merge only when their bags are structurally equal.
type Customizations map[string]string

// Fingerprint returns an order-independent hash of the bag. It is computed
// once when a line is created and compared instead of deep equality.
func (c Customizations) Fingerprint() string {
	if len(c) == 0 {
		return ""
	}

	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, k := range keys {
		// Encoding key and value separately keeps the digest unambiguous
		// regardless of characters inside them.
		_ = enc.Encode(k)
		_ = enc.Encode(c[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Pricing carries the cart-level constants: tax rate, free-shipping threshold
// and the flat fee charged below it. Threshold and fee are in the cart
// currency's major unit.
type Pricing struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

func NewPricing(taxRate, freeShippingThreshold, flatShippingFee string) (Pricing, error) {
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return Pricing{}, errors.New("invalid tax rate")
	}
	threshold, err := decimal.NewFromString(freeShippingThreshold)
	if err != nil {
		return Pricing{}, errors.New("invalid free shipping threshold")
	}
	fee, err := decimal.NewFromString(flatShippingFee)
	if err != nil {
		return Pricing{}, errors.New("invalid flat shipping fee")
	}
	if rate.IsNegative() || threshold.IsNegative() || fee.IsNegative() {
		return Pricing{}, errors.New("pricing constants cannot be negative")
	}

	return Pricing{
		TaxRate:               rate,
		FreeShippingThreshold: threshold,
		FlatShippingFee:       fee,
	}, nil
}
