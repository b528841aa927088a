//go:build unit

package cartstore_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stitchcart/internal/domain/cart"
	"stitchcart/internal/infra/cartstore"
	"stitchcart/internal/pkg/config"
	"stitchcart/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func testCookieConfig() config.CookieConfig {
	return config.CookieConfig{SameSite: "Lax"}
}

func newSavedCookies(t *testing.T, c *cart.Cart) []*http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	store := cartstore.NewCookieStore(ctx, testCookieConfig(), 168*time.Hour)
	require.NoError(t, store.Save(c))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func loadWithCookies(t *testing.T, cookies []*http.Cookie, kind cart.Kind) (*cart.Cart, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	ctx.Request = req

	store := cartstore.NewCookieStore(ctx, testCookieConfig(), 168*time.Hour)
	return store.Load(kind)
}

func TestCookieNameFor(t *testing.T) {
	assert.Equal(t, "main_cart", cartstore.CookieNameFor(cart.KindMain))
	assert.Equal(t, "sample_cart", cartstore.CookieNameFor(cart.KindSample))
}

func TestCookieStoreRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pricing, err := cart.NewPricing("0.15", "10000", "500")
	require.NoError(t, err)

	original, err := cart.NewCart("buyer-1", cart.KindMain, currency.USD, now)
	require.NoError(t, err)

	prod := builder.NewProductBuilder().
		WithTitle("Organic Cotton Tee").
		WithPrice("10.00").
		WithTier(100, -1, "8.00").
		WithMOQ(50).
		BuildDomain()
	require.NoError(t, original.AddItem(pricing, prod, 120, cart.Customizations{"color": "indigo"}, now))

	cookies := newSavedCookies(t, original)
	assert.Equal(t, "main_cart", cookies[0].Name)

	loaded, err := loadWithCookies(t, cookies, cart.KindMain)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.OwnerID, loaded.OwnerID)
	assert.Equal(t, original.Kind, loaded.Kind)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(120), loaded.Items[0].Quantity)
	assert.Equal(t, original.Items[0].CustomizationKey, loaded.Items[0].CustomizationKey)
	assert.True(t, original.Total.Amount.Equal(loaded.Total.Amount))
	assert.Equal(t, original.MOQViolations, loaded.MOQViolations)
}

func TestCookieStoreLoad(t *testing.T) {
	t.Run("missing cookie yields nil without error", func(t *testing.T) {
		loaded, err := loadWithCookies(t, nil, cart.KindMain)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("slots do not leak across kinds", func(t *testing.T) {
		now := time.Now().UTC()
		c, err := cart.NewCart("buyer-1", cart.KindMain, currency.USD, now)
		require.NoError(t, err)

		cookies := newSavedCookies(t, c)

		loaded, err := loadWithCookies(t, cookies, cart.KindSample)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("corrupted payload is reported", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "main_cart", Value: "not-json"}}

		loaded, err := loadWithCookies(t, cookies, cart.KindMain)

		assert.Error(t, err)
		assert.Nil(t, loaded)
	})
}
