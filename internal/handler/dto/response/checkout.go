package response

import (
	"time"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransferResponse struct {
	Token     uuid.UUID `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromTransferResult(result *commands.TransferResult) *TransferResponse {
	return &TransferResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	}
}

type CheckoutLineResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
}

type DeliveryFormResponse struct {
	Mode           string                  `json:"mode"`
	SavedAddressID *uuid.UUID              `json:"savedAddressId,omitempty"`
	Manual         *ManualAddressResponse  `json:"manual,omitempty"`
	Pickup         *PickupLocationResponse `json:"pickup,omitempty"`
	Buyer          BuyerResponse           `json:"buyer"`
	Recipient      RecipientResponse       `json:"recipient"`
	PaymentMethod  string                  `json:"paymentMethod"`
	TermsAccepted  bool                    `json:"termsAccepted"`
}

type ManualAddressResponse struct {
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
}

type PickupLocationResponse struct {
	LocationID string `json:"locationId"`
	Address    string `json:"address"`
}

type BuyerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type RecipientResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AddressResponse struct {
	ID             uuid.UUID `json:"id"`
	RecipientName  string    `json:"recipientName"`
	RecipientPhone string    `json:"recipientPhone"`
	Zipcode        string    `json:"zipcode"`
	City           string    `json:"city"`
	District       string    `json:"district"`
	Address        string    `json:"address"`
	IsDefault      bool      `json:"isDefault"`
}

type CheckoutPageResponse struct {
	Token        uuid.UUID              `json:"token"`
	Lines        []CheckoutLineResponse `json:"lines"`
	Summary      SummaryResponse        `json:"summary"`
	CouponCode   string                 `json:"couponCode,omitempty"`
	UsedPoints   int64                  `json:"usedPoints"`
	DeliveryForm DeliveryFormResponse   `json:"deliveryForm"`
	Addresses    []AddressResponse      `json:"addresses"`
	BalanceCents *int64                 `json:"balanceCents,omitempty"`
	ExpiresAt    time.Time              `json:"expiresAt"`
}

func FromCheckoutPage(page *queries.CheckoutPage) *CheckoutPageResponse {
	resp := &CheckoutPageResponse{
		Token: page.Token,
		Lines: make([]CheckoutLineResponse, 0, len(page.Lines)),
		Summary: SummaryResponse{
			SubtotalCents:       page.SubtotalCents,
			CouponDiscountCents: page.CouponDiscountCents,
			PointsApplied:       page.UsedPoints,
			PointsDiscountCents: page.PointsDiscountCents,
			ShippingCents:       page.ShippingCents,
			PayableCents:        page.PayableCents,
		},
		CouponCode:   page.CouponCode,
		UsedPoints:   page.UsedPoints,
		DeliveryForm: fromDeliveryForm(page.DeliveryForm),
		Addresses:    make([]AddressResponse, 0, len(page.Addresses)),
		ExpiresAt:    page.ExpiresAt,
	}
	for _, l := range page.Lines {
		resp.Lines = append(resp.Lines, CheckoutLineResponse{
			ItemID:         l.ItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	for _, a := range page.Addresses {
		resp.Addresses = append(resp.Addresses, AddressResponse{
			ID:             a.ID,
			RecipientName:  a.RecipientName,
			RecipientPhone: a.RecipientPhone,
			Zipcode:        a.Zipcode,
			City:           a.City,
			District:       a.District,
			Address:        a.Address,
			IsDefault:      a.IsDefault,
		})
	}
	if page.BalanceKnown {
		b := page.BalanceCents
		resp.BalanceCents = &b
	}
	return resp
}

func fromDeliveryForm(form order.DeliveryForm) DeliveryFormResponse {
	resp := DeliveryFormResponse{
		Mode:           string(form.Mode),
		SavedAddressID: form.SavedAddressID,
		Buyer: BuyerResponse{
			Name:  form.Buyer.Name,
			Phone: form.Buyer.Phone,
			Email: form.Buyer.Email,
		},
		Recipient: RecipientResponse{
			Name:  form.Recipient.Name,
			Phone: form.Recipient.Phone,
		},
		PaymentMethod: string(form.PaymentMethod),
		TermsAccepted: form.TermsAccepted,
	}
	if form.Manual != nil {
		resp.Manual = &ManualAddressResponse{
			Zipcode:  form.Manual.Zipcode,
			City:     form.Manual.City,
			District: form.Manual.District,
			Street:   form.Manual.Street,
		}
	}
	if form.Pickup != nil {
		resp.Pickup = &PickupLocationResponse{
			LocationID: form.Pickup.LocationID,
			Address:    form.Pickup.Address,
		}
	}
	return resp
}

func FromDeliveryForm(form *order.DeliveryForm) *DeliveryFormResponse {
	resp := fromDeliveryForm(*form)
	return &resp
}

type PreviewResponse struct {
	Lines         []CheckoutLineResponse `json:"lines"`
	Coupon        *AppliedCouponResponse `json:"coupon,omitempty"`
	UsedPoints    int64                  `json:"usedPoints"`
	Summary       SummaryResponse        `json:"summary"`
	PaymentMethod string                 `json:"paymentMethod"`
}

func FromPreviewResult(result *commands.PreviewResult) *PreviewResponse {
	resp := &PreviewResponse{
		Lines:      make([]CheckoutLineResponse, 0, len(result.Lines)),
		UsedPoints: result.UsedPoints,
		Summary: SummaryResponse{
			SubtotalCents:       result.Totals.SubtotalCents,
			PointsDiscountCents: result.Totals.DiscountTotalCents,
			ShippingCents:       result.Totals.ShippingCents,
			PayableCents:        result.Totals.PayableCents,
		},
		PaymentMethod: string(result.PaymentMethod),
	}
	for _, l := range result.Lines {
		resp.Lines = append(resp.Lines, CheckoutLineResponse{
			ItemID:         l.ItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	if result.Coupon != nil {
		id := result.Coupon.ID
		resp.Coupon = &AppliedCouponResponse{
			ID:            &id,
			Code:          result.Coupon.Code,
			DiscountCents: result.Coupon.DiscountCents,
		}
		resp.Summary.CouponDiscountCents = result.Coupon.DiscountCents
		resp.Summary.PointsDiscountCents = result.Totals.DiscountTotalCents - result.Coupon.DiscountCents
	}
	return resp
}

type ConfirmResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	TotalCents  int64     `json:"totalCents"`
	Status      string    `json:"status"`
	RedirectURL string    `json:"redirectUrl"`
}

func FromConfirmResult(result *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		OrderID:     result.Result.OrderID,
		OrderNumber: result.Result.OrderNumber,
		TotalCents:  result.Result.TotalCents,
		Status:      string(result.Result.Status),
		RedirectURL: result.RedirectURL,
	}
}
