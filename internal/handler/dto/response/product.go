package response

import (
	"time"

	"stitchcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Price        string         `json:"price"`
	Currency     string         `json:"currency"`
	MOQ          int64          `json:"moq"`
	LeadTimeDays int32          `json:"lead_time_days"`
	Tiers        []TierResponse `json:"tiered_pricing,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type TierResponse struct {
	MinQuantity  int64  `json:"min_quantity"`
	MaxQuantity  *int64 `json:"max_quantity,omitempty"`
	PricePerUnit string `json:"price_per_unit"`
}

type ProductListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	Currency  string    `json:"currency"`
	MOQ       int64     `json:"moq"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductListResponse struct {
	Products   []*ProductListItemResponse `json:"products"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

func FromProductView(view *queries.ProductView) *ProductResponse {
	tiers := make([]TierResponse, 0, len(view.Tiers))
	for _, t := range view.Tiers {
		tiers = append(tiers, TierResponse{
			MinQuantity:  t.MinQuantity,
			MaxQuantity:  t.MaxQuantity,
			PricePerUnit: t.PricePerUnit,
		})
	}
	return &ProductResponse{
		ID:           view.ID,
		Title:        view.Title,
		Price:        view.Price,
		Currency:     view.Currency,
		MOQ:          view.MOQ,
		LeadTimeDays: view.LeadTimeDays,
		Tiers:        tiers,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func FromProductList(items []*queries.ProductListItem, next *queries.Cursor) *ProductListResponse {
	products := make([]*ProductListItemResponse, 0, len(items))
	for _, item := range items {
		products = append(products, &ProductListItemResponse{
			ID:        item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Currency:  item.Currency,
			MOQ:       item.MOQ,
			CreatedAt: item.CreatedAt,
		})
	}

	resp := &ProductListResponse{Products: products}
	if next != nil {
		after := next.After
		resp.NextCursor = &after
	}
	return resp
}
