//go:build unit || e2e

package builder

import (
	"time"

	"storefront-checkout/internal/domain/order"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	Token               uuid.UUID
	ItemID              uuid.UUID
	ItemName            string
	UnitPriceCents      int64
	Quantity            int
	CouponID            int64
	CouponCode          string
	CouponDiscountCents int64
	UsedPoints          int64
	ShippingCents       int64
	BalanceCents        int64
	ExpiresAt           time.Time
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Token:               uuid.New(),
		ItemID:              uuid.New(),
		ItemName:            "Walnut Desk Organizer",
		UnitPriceCents:      10000,
		Quantity:            1,
		CouponID:            7,
		CouponCode:          "SAVE10",
		CouponDiscountCents: 1000,
		UsedPoints:          200,
		ShippingCents:       350,
		BalanceCents:        1500,
		ExpiresAt:           time.Now().Add(30 * time.Minute).UTC(),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) subtotalCents() int64 {
	return b.UnitPriceCents * int64(b.Quantity)
}

func (b *CheckoutBuilder) payableCents() int64 {
	return b.subtotalCents() - b.CouponDiscountCents - b.UsedPoints + b.ShippingCents
}

// Build methods
func (b *CheckoutBuilder) BuildDeliveryForm() order.DeliveryForm {
	form := order.NewDeliveryForm()
	form.Mode = order.ModeHomeManual
	form.Manual = &order.ManualAddress{
		Zipcode:  "100-0001",
		City:     "Chiyoda",
		District: "Kanda",
		Street:   "1-2-3",
	}
	form.Buyer = order.Buyer{
		Name:  "Ada Lovelace",
		Phone: "090-0000-0000",
		Email: "ada@example.com",
	}
	form.PaymentMethod = order.PaymentEpay
	form.TermsAccepted = true
	return form
}

func (b *CheckoutBuilder) BuildPage() *queries.CheckoutPage {
	return &queries.CheckoutPage{
		Token: b.Token,
		Lines: []queries.CheckoutLine{
			{
				ItemID:         b.ItemID,
				Name:           b.ItemName,
				UnitPriceCents: b.UnitPriceCents,
				Quantity:       b.Quantity,
			},
		},
		SubtotalCents:       b.subtotalCents(),
		CouponCode:          b.CouponCode,
		CouponDiscountCents: b.CouponDiscountCents,
		UsedPoints:          b.UsedPoints,
		PointsDiscountCents: b.UsedPoints,
		ShippingCents:       b.ShippingCents,
		PayableCents:        b.payableCents(),
		DeliveryForm:        b.BuildDeliveryForm(),
		Addresses: []shared.AddressRow{
			{
				ID:             uuid.New(),
				RecipientName:  "Ada Lovelace",
				RecipientPhone: "090-0000-0000",
				Zipcode:        "100-0001",
				City:           "Chiyoda",
				District:       "Kanda",
				Address:        "1-2-3",
				IsDefault:      true,
			},
		},
		BalanceCents: b.BalanceCents,
		BalanceKnown: true,
		ExpiresAt:    b.ExpiresAt,
	}
}

func (b *CheckoutBuilder) BuildPreviewResult() *commands.PreviewResult {
	return &commands.PreviewResult{
		Lines: []order.DraftLine{
			{
				ItemID:         b.ItemID,
				Name:           b.ItemName,
				UnitPriceCents: b.UnitPriceCents,
				Quantity:       b.Quantity,
			},
		},
		Coupon: &order.DraftCoupon{
			ID:            b.CouponID,
			Code:          b.CouponCode,
			DiscountCents: b.CouponDiscountCents,
		},
		UsedPoints: b.UsedPoints,
		Totals: order.Totals{
			SubtotalCents:      b.subtotalCents(),
			ShippingCents:      b.ShippingCents,
			DiscountTotalCents: b.CouponDiscountCents + b.UsedPoints,
			PayableCents:       b.payableCents(),
		},
		PaymentMethod: order.PaymentEpay,
	}
}

func (b *CheckoutBuilder) BuildConfirmResult(orderID uuid.UUID) *commands.ConfirmResult {
	return &commands.ConfirmResult{
		Result: order.Result{
			OrderID:     orderID,
			OrderNumber: "ORD-20260830-0001",
			TotalCents:  b.payableCents(),
			Status:      order.StatusPending,
		},
		RedirectURL: "https://pay.example.com/epay/" + orderID.String(),
		State:       commands.StateSucceeded,
	}
}

func (b *CheckoutBuilder) BuildUpdateDeliveryRequestDTO() reqdto.UpdateDeliveryRequest {
	mode := string(order.ModeHomeManual)
	payment := string(order.PaymentEpay)
	terms := true
	return reqdto.UpdateDeliveryRequest{
		Token: b.Token,
		Mode:  &mode,
		Manual: &reqdto.ManualAddressRequest{
			Zipcode:  "100-0001",
			City:     "Chiyoda",
			District: "Kanda",
			Street:   "1-2-3",
		},
		Buyer: &reqdto.BuyerRequest{
			Name:  "Ada Lovelace",
			Phone: "090-0000-0000",
			Email: "ada@example.com",
		},
		PaymentMethod: &payment,
		TermsAccepted: &terms,
	}
}
