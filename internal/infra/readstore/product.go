package readstore

import (
	"context"
	"strings"
	"time"

	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/pgconv"
	"stitchcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getProductViewByIDSQL = `
SELECT id, title, price, currency, moq, lead_time_days, created_at, updated_at
FROM products
WHERE id = $1`

const getProductTiersSQL = `
SELECT min_quantity, max_quantity, price_per_unit
FROM product_price_tiers
WHERE product_id = $1
ORDER BY min_quantity`

const listProductsFirstPageSQL = `
SELECT id, title, price, currency, moq, created_at
FROM products
ORDER BY created_at DESC, id DESC
LIMIT $1`

const listProductsKeysetSQL = `
SELECT id, title, price, currency, moq, created_at
FROM products
WHERE (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var (
		view      queries.ProductView
		price     pgtype.Numeric
		code      string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	row := r.pool.QueryRow(ctx, getProductViewByIDSQL, id)
	err := row.Scan(&view.ID, &view.Title, &price, &code, &view.MOQ, &view.LeadTimeDays, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product view by id", err)
	}

	amount, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product price", err)
	}

	view.Price = amount.String()
	view.Currency = strings.TrimSpace(code)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	tiers, err := r.findTierViews(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Tiers = tiers

	return &view, nil
}

func (r *ProductReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.pool.Query(ctx, listProductsFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products first page", err)
	}
	return collectListItems(rows)
}

func (r *ProductReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.pool.Query(ctx, listProductsKeysetSQL, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products keyset", err)
	}
	return collectListItems(rows)
}

func (r *ProductReadStore) findTierViews(ctx context.Context, productID uuid.UUID) ([]queries.TierView, error) {
	rows, err := r.pool.Query(ctx, getProductTiersSQL, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product tiers", err)
	}

	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.TierView, error) {
		var (
			minQty       int64
			maxQty       pgtype.Int8
			pricePerUnit pgtype.Numeric
		)
		if err := row.Scan(&minQty, &maxQty, &pricePerUnit); err != nil {
			return queries.TierView{}, err
		}

		unitPrice, err := pgconv.DecimalFromNumeric(pricePerUnit)
		if err != nil {
			return queries.TierView{}, err
		}

		tier := queries.TierView{MinQuantity: minQty, PricePerUnit: unitPrice.String()}
		if maxQty.Valid {
			max := maxQty.Int64
			tier.MaxQuantity = &max
		}
		return tier, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product tier rows", err)
	}

	return tiers, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.ProductListItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ProductListItem, error) {
		var (
			item      queries.ProductListItem
			price     pgtype.Numeric
			code      string
			createdAt pgtype.Timestamptz
		)
		if err := row.Scan(&item.ID, &item.Title, &price, &code, &item.MOQ, &createdAt); err != nil {
			return nil, err
		}

		amount, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, err
		}

		item.Price = amount.String()
		item.Currency = strings.TrimSpace(code)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		return &item, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product rows", err)
	}
	return items, nil
}
