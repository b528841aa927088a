package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data including the full
// tier schedule.
type ProductView struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Price        string     `json:"price"`
	Currency     string     `json:"currency"`
	MOQ          int64      `json:"moq"`
	LeadTimeDays int32      `json:"lead_time_days"`
	Tiers        []TierView `json:"tiered_pricing,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TierView struct {
	MinQuantity  int64  `json:"min_quantity"`
	MaxQuantity  *int64 `json:"max_quantity,omitempty"`
	PricePerUnit string `json:"price_per_unit"`
}

// ProductListItem is the lighter shape for catalog listings.
type ProductListItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	Currency  string    `json:"currency"`
	MOQ       int64     `json:"moq"`
	CreatedAt time.Time `json:"created_at"`
}

// UserView represents read-optimized account data.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyName *string   `json:"company_name,omitempty"`
}

// CartView is the display shape of one cart slot. Amounts are decimal
// strings in the cart currency.
type CartView struct {
	ID            uuid.UUID      `json:"id"`
	OwnerID       string         `json:"owner_id"`
	Kind          string         `json:"type"`
	Currency      string         `json:"currency"`
	Items         []CartItemView `json:"items"`
	ItemCount     int64          `json:"item_count"`
	Subtotal      string         `json:"subtotal"`
	Tax           string         `json:"tax"`
	Shipping      string         `json:"shipping"`
	Total         string         `json:"total"`
	MOQViolations []string       `json:"moq_violations"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CartItemView struct {
	ID                uuid.UUID         `json:"id"`
	ProductID         uuid.UUID         `json:"product_id"`
	Title             string            `json:"title"`
	Quantity          int64             `json:"quantity"`
	UnitPrice         string            `json:"unit_price"`
	Subtotal          string            `json:"subtotal"`
	TierMinQuantity   *int64            `json:"tier_min_quantity,omitempty"`
	Customizations    map[string]string `json:"customizations,omitempty"`
	MOQ               int64             `json:"moq"`
	MOQWarning        bool              `json:"moq_warning"`
	EstimatedDelivery time.Time         `json:"estimated_delivery"`
	AddedAt           time.Time         `json:"added_at"`
}
