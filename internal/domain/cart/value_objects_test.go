//go:build unit

package cart_test

import (
	"testing"

	"stitchcart/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomizationsFingerprint(t *testing.T) {
	t.Run("insertion order does not matter", func(t *testing.T) {
		a := cart.Customizations{"color": "indigo", "fabric": "denim", "print": "chest"}
		b := cart.Customizations{"print": "chest", "color": "indigo", "fabric": "denim"}

		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("different values differ", func(t *testing.T) {
		a := cart.Customizations{"color": "indigo"}
		b := cart.Customizations{"color": "black"}

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("key and value boundaries are unambiguous", func(t *testing.T) {
		a := cart.Customizations{"ab": "c"}
		b := cart.Customizations{"a": "bc"}

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("empty and nil bags share the empty fingerprint", func(t *testing.T) {
		assert.Equal(t, "", cart.Customizations(nil).Fingerprint())
		assert.Equal(t, "", cart.Customizations{}.Fingerprint())
	})
}

func TestNewPricing(t *testing.T) {
	t.Run("valid constants", func(t *testing.T) {
		pricing, err := cart.NewPricing("0.15", "10000", "500")
		require.NoError(t, err)
		assert.Equal(t, "0.15", pricing.TaxRate.String())
		assert.Equal(t, "10000", pricing.FreeShippingThreshold.String())
		assert.Equal(t, "500", pricing.FlatShippingFee.String())
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		_, err := cart.NewPricing("fifteen", "10000", "500")
		assert.Error(t, err)

		_, err = cart.NewPricing("0.15", "", "500")
		assert.Error(t, err)
	})

	t.Run("negative values are rejected", func(t *testing.T) {
		_, err := cart.NewPricing("-0.15", "10000", "500")
		assert.Error(t, err)

		_, err = cart.NewPricing("0.15", "10000", "-500")
		assert.Error(t, err)
	})
}
