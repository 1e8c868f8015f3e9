package response

import (
	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	Selected       bool      `json:"selected"`
}

type AppliedCouponResponse struct {
	ID            *int64 `json:"id,omitempty"`
	Code          string `json:"code"`
	DiscountCents int64  `json:"discountCents"`
}

type NoticeResponse struct {
	Kind         string `json:"kind"`
	CouponCode   string `json:"couponCode,omitempty"`
	PointsBefore int64  `json:"pointsBefore,omitempty"`
	PointsAfter  int64  `json:"pointsAfter,omitempty"`
}

type SummaryResponse struct {
	SubtotalCents       int64 `json:"subtotalCents"`
	CouponDiscountCents int64 `json:"couponDiscountCents"`
	PointsApplied       int64 `json:"pointsApplied"`
	PointsDiscountCents int64 `json:"pointsDiscountCents"`
	ShippingCents       int64 `json:"shippingCents"`
	PayableCents        int64 `json:"payableCents"`
}

type CouponOptionResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	DiscountType  string `json:"discountType"`
	Value         int64  `json:"value"`
	MinSpendCents int64  `json:"minSpendCents"`
}

type CartResponse struct {
	Items            []CartItemResponse     `json:"items"`
	Coupon           *AppliedCouponResponse `json:"coupon,omitempty"`
	PointsRequested  int64                  `json:"pointsRequested"`
	Summary          SummaryResponse        `json:"summary"`
	AvailableCoupons []CouponOptionResponse `json:"availableCoupons,omitempty"`
	BalanceCents     *int64                 `json:"balanceCents,omitempty"`
	Notices          []NoticeResponse       `json:"notices,omitempty"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	resp := fromCartCore(view.Items, view.State, view.ShippingCents, view.BalanceCents, view.BalanceKnown, view.Notices)
	resp.AvailableCoupons = make([]CouponOptionResponse, 0, len(view.AvailableCoupons))
	for _, c := range view.AvailableCoupons {
		resp.AvailableCoupons = append(resp.AvailableCoupons, CouponOptionResponse{
			ID:            c.ID,
			Code:          c.Code,
			DiscountType:  c.DiscountType,
			Value:         c.Value,
			MinSpendCents: c.MinSpendCents,
		})
	}
	return resp
}

func FromCartState(state *commands.CartState, shippingCents int64) *CartResponse {
	return fromCartCore(state.Items, state.State, shippingCents, state.BalanceCents, state.BalanceKnown, state.Notices)
}

func fromCartCore(items []shared.CartItemRow, st discount.State, shippingCents, balance int64, balanceKnown bool, notices []discount.Notice) *CartResponse {
	resp := &CartResponse{
		Items:           make([]CartItemResponse, 0, len(items)),
		PointsRequested: st.PointsRequested,
		Summary: SummaryResponse{
			SubtotalCents:       st.SubtotalCents,
			PointsApplied:       st.PointsApplied,
			PointsDiscountCents: st.PointsDiscountCents,
			ShippingCents:       shippingCents,
			PayableCents:        st.PayableCents(shippingCents),
		},
	}
	for _, it := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:             it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			Selected:       it.Selected,
		})
	}
	if c := st.Coupon; c != nil {
		coup := &AppliedCouponResponse{
			Code:          c.Code,
			DiscountCents: c.AmountCents,
		}
		if !c.FromCode {
			id := c.ID
			coup.ID = &id
		}
		resp.Coupon = coup
		resp.Summary.CouponDiscountCents = c.AmountCents
	}
	if balanceKnown {
		b := balance
		resp.BalanceCents = &b
	}
	for _, n := range notices {
		resp.Notices = append(resp.Notices, NoticeResponse{
			Kind:         string(n.Kind),
			CouponCode:   n.CouponCode,
			PointsBefore: n.PointsBefore,
			PointsAfter:  n.PointsAfter,
		})
	}
	return resp
}
