package readstore_test

import (
	"context"
	"testing"
	"time"

	"stitchcart/internal/infra"
	"stitchcart/internal/infra/readstore"
	"stitchcart/tests/common/dbtest"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type productReadStoreSuite struct {
	suite.Suite

	store *readstore.ProductReadStore
	pool  *pgxpool.Pool
}

func TestProductReadStoreSuite(t *testing.T) {
	suite.Run(t, new(productReadStoreSuite))
}

func (suite *productReadStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := dbtest.StartPostgres(ctx, "../../../migrations")
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.store = readstore.NewProductReadStore(suite.pool)
}

func (suite *productReadStoreSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *productReadStoreSuite) SetupTest() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE products CASCADE")
	suite.Require().NoError(err)
}

func (suite *productReadStoreSuite) insertProductAt(ctx context.Context, title string, createdAt time.Time) uuid.UUID {
	suite.T().Helper()

	id := uuid.New()
	_, err := suite.pool.Exec(ctx,
		"INSERT INTO products (id, title, price, currency, moq, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6)",
		id, title, "10.00", "USD", 1, createdAt)
	suite.Require().NoError(err)
	return id
}

func (suite *productReadStoreSuite) TestFindByID() {
	t := suite.T()
	ctx := t.Context()

	id := suite.insertProductAt(ctx, "Organic Cotton Tee", time.Now().UTC())
	_, err := suite.pool.Exec(ctx,
		"INSERT INTO product_price_tiers (product_id, min_quantity, price_per_unit) VALUES ($1, $2, $3)",
		id, 100, "8.00")
	require.NoError(t, err)

	view, err := suite.store.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Organic Cotton Tee", view.Title)
	assert.Equal(t, "10", view.Price)
	assert.Equal(t, "USD", view.Currency)
	require.Len(t, view.Tiers, 1)
	assert.Equal(t, int64(100), view.Tiers[0].MinQuantity)
	assert.Nil(t, view.Tiers[0].MaxQuantity)
	assert.Equal(t, "8", view.Tiers[0].PricePerUnit)
}

func (suite *productReadStoreSuite) TestFindByIDNotFound() {
	t := suite.T()

	_, err := suite.store.FindByID(t.Context(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func (suite *productReadStoreSuite) TestKeysetPagination() {
	t := suite.T()
	ctx := t.Context()

	base := time.Now().UTC().Truncate(time.Second)
	var titles []string
	for i := 0; i < 5; i++ {
		title := gofakeit.ProductName()
		titles = append(titles, title)
		suite.insertProductAt(ctx, title, base.Add(time.Duration(i)*time.Second))
	}

	firstPage, err := suite.store.ListFirstPage(ctx, 2)
	require.NoError(t, err)
	require.Len(t, firstPage, 2)

	// newest first
	assert.Equal(t, titles[4], firstPage[0].Title)
	assert.Equal(t, titles[3], firstPage[1].Title)

	last := firstPage[1]
	secondPage, err := suite.store.ListKeyset(ctx, last.CreatedAt, last.ID, 2)
	require.NoError(t, err)
	require.Len(t, secondPage, 2)

	assert.Equal(t, titles[2], secondPage[0].Title)
	assert.Equal(t, titles[1], secondPage[1].Title)

	last = secondPage[1]
	thirdPage, err := suite.store.ListKeyset(ctx, last.CreatedAt, last.ID, 2)
	require.NoError(t, err)
	require.Len(t, thirdPage, 1)
	assert.Equal(t, titles[0], thirdPage[0].Title)
}
