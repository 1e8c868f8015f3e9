package request

import (
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type ManualAddressRequest struct {
	Zipcode  string `json:"zipcode" binding:"required"`
	City     string `json:"city" binding:"required"`
	District string `json:"district" binding:"required"`
	Street   string `json:"street" binding:"required"`
}

type PickupLocationRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	Address    string `json:"address" binding:"required"`
}

type BuyerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type RecipientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateDeliveryRequest applies only the fields present, so the page can
// save one control at a time without resending the whole form.
type UpdateDeliveryRequest struct {
	Token          uuid.UUID              `json:"token" binding:"required"`
	Mode           *string                `json:"mode,omitempty"`
	SavedAddressID *uuid.UUID             `json:"saved_address_id,omitempty"`
	Manual         *ManualAddressRequest  `json:"manual,omitempty"`
	Pickup         *PickupLocationRequest `json:"pickup,omitempty"`
	Buyer          *BuyerRequest          `json:"buyer,omitempty"`
	Recipient      *RecipientRequest      `json:"recipient,omitempty"`
	PaymentMethod  *string                `json:"payment_method,omitempty"`
	TermsAccepted  *bool                  `json:"terms_accepted,omitempty"`
}

func (r UpdateDeliveryRequest) ToUpdate() commands.DeliveryUpdate {
	upd := commands.DeliveryUpdate{
		Mode:           r.Mode,
		SavedAddressID: r.SavedAddressID,
		PaymentMethod:  r.PaymentMethod,
		TermsAccepted:  r.TermsAccepted,
	}
	if r.Manual != nil {
		upd.Manual = &order.ManualAddress{
			Zipcode:  r.Manual.Zipcode,
			City:     r.Manual.City,
			District: r.Manual.District,
			Street:   r.Manual.Street,
		}
	}
	if r.Pickup != nil {
		upd.Pickup = &order.PickupLocation{
			LocationID: r.Pickup.LocationID,
			Address:    r.Pickup.Address,
		}
	}
	if r.Buyer != nil {
		upd.Buyer = &order.Buyer{
			Name:  r.Buyer.Name,
			Phone: r.Buyer.Phone,
			Email: r.Buyer.Email,
		}
	}
	if r.Recipient != nil {
		upd.Recipient = &order.Recipient{
			Name:  r.Recipient.Name,
			Phone: r.Recipient.Phone,
		}
	}
	return upd
}

type PreviewRequest struct {
	Token uuid.UUID `json:"token" binding:"required"`
}

type ConfirmRequest struct {
	Token uuid.UUID `json:"token" binding:"required"`
}
