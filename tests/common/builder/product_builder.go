//go:build unit || e2e

package builder

import (
	"time"

	"stitchcart/internal/domain/money"
	"stitchcart/internal/domain/product"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ProductBuilder struct {
	ID           uuid.UUID
	Title        string
	Price        string
	Currency     currency.Unit
	MOQ          int64
	LeadTimeDays int32
	Tiers        []product.TierPricing
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:           uuid.New(),
		Title:        gofakeit.ProductName(),
		Price:        "10.00",
		Currency:     currency.USD,
		MOQ:          1,
		LeadTimeDays: 14,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) WithMOQ(moq int64) *ProductBuilder {
	b.MOQ = moq
	return b
}

func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.Title = title
	return b
}

func (b *ProductBuilder) WithLeadTimeDays(days int32) *ProductBuilder {
	b.LeadTimeDays = days
	return b
}

// WithTier appends a tier row. Pass max < 0 for an open-ended tier.
func (b *ProductBuilder) WithTier(min, max int64, pricePerUnit string) *ProductBuilder {
	tier := product.TierPricing{
		MinQuantity:  min,
		PricePerUnit: decimal.RequireFromString(pricePerUnit),
	}
	if max >= 0 {
		tier.MaxQuantity = &max
	}
	b.Tiers = append(b.Tiers, tier)
	return b
}

func (b *ProductBuilder) BuildDomain() product.Product {
	now := time.Now().UTC()
	return product.Product{
		ID:           b.ID,
		Title:        b.Title,
		Price:        money.New(decimal.RequireFromString(b.Price), b.Currency),
		MOQ:          b.MOQ,
		LeadTimeDays: b.LeadTimeDays,
		Tiers:        b.Tiers,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
