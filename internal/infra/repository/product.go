package repository

import (
	"context"
	"strings"

	"stitchcart/internal/domain/money"
	"stitchcart/internal/domain/product"
	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/currency"
)

const findProductByIDSQL = `
SELECT id, title, price, currency, moq, lead_time_days, created_at, updated_at
FROM products
WHERE id = $1`

const findTiersByProductSQL = `
SELECT min_quantity, max_quantity, price_per_unit
FROM product_price_tiers
WHERE product_id = $1
ORDER BY min_quantity`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (product.Product, error) {
	var (
		pid       uuid.UUID
		title     string
		price     pgtype.Numeric
		code      string
		moq       int64
		leadDays  int32
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	row := r.pool.QueryRow(ctx, findProductByIDSQL, id)
	if err := row.Scan(&pid, &title, &price, &code, &moq, &leadDays, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return product.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return product.Product{}, infra.WrapRepoErr("failed to find product by id", err)
	}

	amount, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return product.Product{}, infra.WrapRepoErr("failed to convert product price", err)
	}

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return product.Product{}, infra.WrapRepoErr("product currency is invalid", err)
	}

	tiers, err := r.findTiers(ctx, pid)
	if err != nil {
		return product.Product{}, err
	}

	return product.Product{
		ID:           pid,
		Title:        title,
		Price:        money.New(amount, unit),
		MOQ:          moq,
		LeadTimeDays: leadDays,
		Tiers:        tiers,
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (r *ProductRepository) findTiers(ctx context.Context, productID uuid.UUID) ([]product.TierPricing, error) {
	rows, err := r.pool.Query(ctx, findTiersByProductSQL, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product tiers", err)
	}

	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (product.TierPricing, error) {
		var (
			minQty       int64
			maxQty       pgtype.Int8
			pricePerUnit pgtype.Numeric
		)
		if err := row.Scan(&minQty, &maxQty, &pricePerUnit); err != nil {
			return product.TierPricing{}, err
		}

		unitPrice, err := pgconv.DecimalFromNumeric(pricePerUnit)
		if err != nil {
			return product.TierPricing{}, err
		}

		tier := product.TierPricing{MinQuantity: minQty, PricePerUnit: unitPrice}
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
