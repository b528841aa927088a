package repository_test

import (
	"context"
	"testing"
	"time"

	"stitchcart/internal/domain/product"
	"stitchcart/internal/infra"
	"stitchcart/internal/infra/repository"
	"stitchcart/internal/usecase/commands"
	"stitchcart/tests/common/dbtest"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type productRepositorySuite struct {
	suite.Suite

	repo commands.ProductRepository
	pool *pgxpool.Pool
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := dbtest.StartPostgres(ctx, "../../../migrations")
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewProductRepository(suite.pool)
}

func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *productRepositorySuite) insertProduct(ctx context.Context, title, price string, moq int64, leadDays int32) uuid.UUID {
	suite.T().Helper()

	id := uuid.New()
	_, err := suite.pool.Exec(ctx,
		"INSERT INTO products (id, title, price, currency, moq, lead_time_days) VALUES ($1, $2, $3, $4, $5, $6)",
		id, title, price, "USD", moq, leadDays)
	suite.Require().NoError(err)
	return id
}

func (suite *productRepositorySuite) insertTier(ctx context.Context, productID uuid.UUID, min int64, max *int64, pricePerUnit string) {
	suite.T().Helper()

	_, err := suite.pool.Exec(ctx,
		"INSERT INTO product_price_tiers (product_id, min_quantity, max_quantity, price_per_unit) VALUES ($1, $2, $3, $4)",
		productID, min, max, pricePerUnit)
	suite.Require().NoError(err)
}

func (suite *productRepositorySuite) TestFindByID() {
	t := suite.T()
	ctx := t.Context()

	title := gofakeit.ProductName()
	id := suite.insertProduct(ctx, title, "42.50", 100, 21)

	max := int64(199)
	suite.insertTier(ctx, id, 100, &max, "38.00")
	suite.insertTier(ctx, id, 200, nil, "35.00")

	got, err := suite.repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, title, got.Title)
	assert.Equal(t, "USD", got.Price.Currency.String())
	assert.True(t, got.Price.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, int64(100), got.MOQ)
	assert.Equal(t, int32(21), got.LeadTimeDays)
	assert.False(t, got.CreatedAt.IsZero())

	wantTiers := []product.TierPricing{
		{MinQuantity: 100, MaxQuantity: &max, PricePerUnit: decimal.RequireFromString("38.00")},
		{MinQuantity: 200, PricePerUnit: decimal.RequireFromString("35.00")},
	}
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
	diff := cmp.Diff(wantTiers, got.Tiers, decimalComparer)
	assert.Empty(t, diff)
}

func (suite *productRepositorySuite) TestFindByIDWithoutTiers() {
	t := suite.T()
	ctx := t.Context()

	id := suite.insertProduct(ctx, gofakeit.ProductName(), "10.00", 1, 0)

	got, err := suite.repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Empty(t, got.Tiers)

	quote := got.ResolvePrice(1000)
	assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString("10.00")))
	assert.Nil(t, quote.Tier)
}

func (suite *productRepositorySuite) TestFindByIDNotFound() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.FindByID(ctx, uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func (suite *productRepositorySuite) TestRoundTripIntoDomain() {
	t := suite.T()
	ctx := t.Context()

	id := suite.insertProduct(ctx, "Selvedge Denim Jacket", "42.00", 100, 30)
	suite.insertTier(ctx, id, 100, nil, "38.00")

	got, err := suite.repo.FindByID(ctx, id)
	require.NoError(t, err)

	quote := got.ResolvePrice(150)
	require.NotNil(t, quote.Tier)
	assert.True(t, quote.PricePerUnit.Amount.Equal(decimal.RequireFromString("38.00")))
	assert.Equal(t, currency.USD.String(), quote.PricePerUnit.Currency.String())

	// timestamps come back in UTC within pg's precision
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)

	opts := cmpopts.IgnoreFields(product.Product{}, "CreatedAt", "UpdatedAt", "Tiers", "Price")
	diff := cmp.Diff(product.Product{ID: id, Title: "Selvedge Denim Jacket", MOQ: 100, LeadTimeDays: 30}, got, opts)
	assert.Empty(t, diff)
}
