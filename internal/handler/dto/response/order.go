package response

import (
	"time"

	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	OrderID             uuid.UUID           `json:"orderId"`
	OrderNumber         string              `json:"orderNumber"`
	Status              string              `json:"status"`
	PaymentMethod       string              `json:"paymentMethod"`
	SubtotalCents       int64               `json:"subtotalCents"`
	ShippingCents       int64               `json:"shippingCents"`
	CouponDiscountCents int64               `json:"couponDiscountCents"`
	PointsDiscountCents int64               `json:"pointsDiscountCents"`
	UsedPoints          int64               `json:"usedPoints"`
	TotalCents          int64               `json:"totalCents"`
	RecipientName       string              `json:"recipientName"`
	RecipientPhone      string              `json:"recipientPhone"`
	ShippingAddress     string              `json:"shippingAddress"`
	PickupLocationID    string              `json:"pickupLocationId,omitempty"`
	Lines               []OrderLineResponse `json:"lines"`
	CreatedAt           time.Time           `json:"createdAt"`
}

type OrderLineResponse struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

func FromOrderView(view *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderViews(views []queries.OrderView) ([]*OrderResponse, error) {
	out := make([]*OrderResponse, 0, len(views))
	for i := range views {
		resp, err := FromOrderView(&views[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
