//go:build unit

package product_test

import (
	"testing"

	"stitchcart/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice(t *testing.T) {
	t.Run("no tiers falls back to base price", func(t *testing.T) {
		prod := builder.NewProductBuilder().WithPrice("12.50").BuildDomain()

		quote := prod.ResolvePrice(100)

		assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString("12.50")))
		assert.Nil(t, quote.Tier)
	})

	t.Run("quantity below first tier falls back to base price", func(t *testing.T) {
		prod := builder.NewProductBuilder().
			WithPrice("10.00").
			WithTier(50, 99, "9.00").
			WithTier(100, -1, "8.00").
			BuildDomain()

		quote := prod.ResolvePrice(49)

		assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString("10.00")))
		assert.Nil(t, quote.Tier)
	})

	t.Run("tier boundaries are inclusive", func(t *testing.T) {
		prod := builder.NewProductBuilder().
			WithPrice("10.00").
			WithTier(50, 99, "9.00").
			WithTier(100, -1, "8.00").
			BuildDomain()

		tests := []struct {
			quantity int64
			want     string
		}{
			{50, "9.00"},
			{99, "9.00"},
			{100, "8.00"},
			{100000, "8.00"},
		}
		for _, tt := range tests {
			quote := prod.ResolvePrice(tt.quantity)
			require.NotNil(t, quote.Tier, "quantity %d", tt.quantity)
			assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString(tt.want)),
				"quantity %d: got %s", tt.quantity, quote.PricePerUnit.Amount)
		}
	})

	t.Run("unit price never increases with quantity", func(t *testing.T) {
		prod := builder.NewProductBuilder().
			WithPrice("10.00").
			WithTier(10, 49, "9.50").
			WithTier(50, 199, "8.75").
			WithTier(200, -1, "7.00").
			BuildDomain()

		prev := decimal.RequireFromString("10.00")
		for qty := int64(1); qty <= 300; qty++ {
			got := prod.ResolvePrice(qty).PricePerUnit.Amount
			assert.True(t, got.LessThanOrEqual(prev), "quantity %d: %s > %s", qty, got, prev)
			prev = got
		}
	})

	t.Run("overlapping tiers resolve to the highest min quantity", func(t *testing.T) {
		prod := builder.NewProductBuilder().
			WithPrice("10.00").
			WithTier(10, 100, "9.00").
			WithTier(50, 100, "8.00").
			BuildDomain()

		quote := prod.ResolvePrice(75)

		require.NotNil(t, quote.Tier)
		assert.Equal(t, int64(50), quote.Tier.MinQuantity)
		assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString("8.00")))
	})

	t.Run("resolution does not mutate the tier order", func(t *testing.T) {
		prod := builder.NewProductBuilder().
			WithPrice("10.00").
			WithTier(10, 49, "9.50").
			WithTier(50, -1, "8.75").
			BuildDomain()

		prod.ResolvePrice(60)

		assert.Equal(t, int64(10), prod.Tiers[0].MinQuantity)
		assert.Equal(t, int64(50), prod.Tiers[1].MinQuantity)
	})
}
