package request

import (
	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID      uuid.UUID         `json:"product_id" binding:"required"`
	Quantity       int64             `json:"quantity" binding:"required,gt=0"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

type UpdateCartItemQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}
