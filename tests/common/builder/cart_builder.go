//go:build unit || e2e

package builder

import (
	"time"

	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartBuilder struct {
	ItemID         uuid.UUID
	ItemName       string
	UnitPriceCents int64
	Quantity       int
	CouponID       int64
	CouponCode     string
	DiscountCents  int64
	PointsApplied  int64
	BalanceCents   int64
	ShippingCents  int64
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ItemID:         uuid.New(),
		ItemName:       "Walnut Desk Organizer",
		UnitPriceCents: 10000,
		Quantity:       1,
		CouponID:       7,
		CouponCode:     "SAVE10",
		DiscountCents:  1000,
		PointsApplied:  200,
		BalanceCents:   1500,
		ShippingCents:  350,
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CartBuilder) BuildItems() []shared.CartItemRow {
	return []shared.CartItemRow{
		{
			ID:             b.ItemID,
			Name:           b.ItemName,
			UnitPriceCents: b.UnitPriceCents,
			Quantity:       b.Quantity,
			Selected:       true,
		},
	}
}

func (b *CartBuilder) BuildDiscountState() discount.State {
	st := discount.State{
		SubtotalCents:       b.UnitPriceCents * int64(b.Quantity),
		PointsRequested:     b.PointsApplied,
		PointsApplied:       b.PointsApplied,
		PointsDiscountCents: b.PointsApplied,
	}
	if b.CouponCode != "" {
		st.Coupon = &discount.AppliedCoupon{
			ID:          b.CouponID,
			Code:        b.CouponCode,
			Percent:     true,
			Value:       10,
			AmountCents: b.DiscountCents,
		}
	}
	return st
}

func (b *CartBuilder) BuildState() *commands.CartState {
	return &commands.CartState{
		Items:        b.BuildItems(),
		State:        b.BuildDiscountState(),
		BalanceCents: b.BalanceCents,
		BalanceKnown: true,
	}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	st := b.BuildDiscountState()
	return &queries.CartView{
		Items:         b.BuildItems(),
		State:         st,
		ShippingCents: b.ShippingCents,
		PayableCents:  st.PayableCents(b.ShippingCents),
		AvailableCoupons: []shared.CouponRow{
			{
				ID:           b.CouponID,
				Code:         b.CouponCode,
				DiscountType: "percent",
				Value:        10,
				TargetType:   "all",
				IsValid:      true,
				Status:       "active",
			},
		},
		BalanceCents: b.BalanceCents,
		BalanceKnown: true,
	}
}

func (b *CartBuilder) BuildTransferResult(token uuid.UUID) *commands.TransferResult {
	return &commands.TransferResult{
		Token:     token,
		ExpiresAt: time.Now().Add(30 * time.Minute).UTC(),
	}
}
