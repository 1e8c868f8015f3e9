package request

import (
	"strings"

	"github.com/google/uuid"
)

type UpdateSelectionRequest struct {
	SelectedItemIDs []uuid.UUID `json:"selected_item_ids" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyCouponRequest) TrimmedCode() string {
	return strings.TrimSpace(r.Code)
}

type StagePointsRequest struct {
	Points int64 `json:"points" binding:"min=0"`
}

type CreateTransferRequest struct {
	// Reset carries the shopper straight to checkout with no discounts,
	// regardless of what is staged in the cart.
	Reset bool `json:"reset"`
}
