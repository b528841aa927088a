package response

import (
	"time"

	"stitchcart/internal/pkg/errs"
	"stitchcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartResponse struct {
	ID            uuid.UUID          `json:"id"`
	OwnerID       string             `json:"owner_id"`
	Kind          string             `json:"type"`
	Currency      string             `json:"currency"`
	Items         []CartItemResponse `json:"items"`
	ItemCount     int64              `json:"item_count"`
	Subtotal      string             `json:"subtotal"`
	Tax           string             `json:"tax"`
	Shipping      string             `json:"shipping"`
	Total         string             `json:"total"`
	MOQViolations []string           `json:"moq_violations"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type CartItemResponse struct {
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

func FromCartView(view *queries.CartView) (*CartResponse, error) {
	var resp CartResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to convert cart view")
	}
	if resp.Items == nil {
		resp.Items = []CartItemResponse{}
	}
	if resp.MOQViolations == nil {
		resp.MOQViolations = []string{}
	}
	return &resp, nil
}
