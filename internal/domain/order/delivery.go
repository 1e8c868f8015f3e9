package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidDeliveryMode     = errors.New("invalid delivery mode")
	ErrBuyerIncomplete         = errors.New("buyer name, phone and email are required")
	ErrAddressNotSelected      = errors.New("saved address not selected")
	ErrManualAddressIncomplete = errors.New("manual address is incomplete")
	ErrPickupIncomplete        = errors.New("pickup location is incomplete")
	ErrTermsNotAccepted        = errors.New("terms must be accepted")
)

type DeliveryMode string

const (
	ModeHomeSaved    DeliveryMode = "home-saved-address"
	ModeHomeManual   DeliveryMode = "home-manual-entry"
	ModeLockerPickup DeliveryMode = "locker-pickup"
)

func NewDeliveryMode(s string) (DeliveryMode, error) {
	switch DeliveryMode(s) {
	case ModeHomeSaved, ModeHomeManual, ModeLockerPickup:
		return DeliveryMode(s), nil
	default:
		return "", ErrInvalidDeliveryMode
	}
}

type ManualAddress struct {
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
}

func (a ManualAddress) complete() bool {
	return strings.TrimSpace(a.Zipcode) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.District) != "" &&
		strings.TrimSpace(a.Street) != ""
}

type PickupLocation struct {
	LocationID string `json:"location_id"`
	Address    string `json:"address"`
}

func (p PickupLocation) complete() bool {
	return strings.TrimSpace(p.LocationID) != "" && strings.TrimSpace(p.Address) != ""
}

type Buyer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (b Buyer) complete() bool {
	return strings.TrimSpace(b.Name) != "" &&
		strings.TrimSpace(b.Phone) != "" &&
		strings.TrimSpace(b.Email) != ""
}

type Recipient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DeliveryForm is the three-state delivery machine. The states are mutually
// exclusive: entering one clears the fields owned by the previous one, so a
// stale saved-address id can never leak into a manual-entry submission.
type DeliveryForm struct {
	Mode           DeliveryMode    `json:"mode"`
	SavedAddressID *uuid.UUID      `json:"saved_address_id,omitempty"`
	Manual         *ManualAddress  `json:"manual,omitempty"`
	Pickup         *PickupLocation `json:"pickup,omitempty"`
	Buyer          Buyer           `json:"buyer"`
	Recipient      Recipient       `json:"recipient"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	TermsAccepted  bool            `json:"terms_accepted"`
}

func NewDeliveryForm() DeliveryForm {
	return DeliveryForm{Mode: ModeHomeSaved}
}

// SwitchMode transitions the machine, blanking the fields owned by the state
// being left.
func (f *DeliveryForm) SwitchMode(mode DeliveryMode) error {
	if _, err := NewDeliveryMode(string(mode)); err != nil {
		return err
	}
	if mode == f.Mode {
		return nil
	}

	switch f.Mode {
	case ModeHomeSaved:
		f.SavedAddressID = nil
	case ModeHomeManual:
		f.Manual = nil
	case ModeLockerPickup:
		f.Pickup = nil
	}

	f.Mode = mode
	return nil
}

func (f *DeliveryForm) SelectSavedAddress(id uuid.UUID) error {
	if err := f.SwitchMode(ModeHomeSaved); err != nil {
		return err
	}
	f.SavedAddressID = &id
	return nil
}

func (f *DeliveryForm) EnterManualAddress(addr ManualAddress) error {
	if err := f.SwitchMode(ModeHomeManual); err != nil {
		return err
	}
	f.Manual = &addr
	return nil
}

func (f *DeliveryForm) SelectPickup(p PickupLocation) error {
	if err := f.SwitchMode(ModeLockerPickup); err != nil {
		return err
	}
	f.Pickup = &p
	return nil
}

// Validate is the gate before submission is permitted. It fails closed: any
// error here aborts before any remote side effect.
func (f *DeliveryForm) Validate() error {
	if !f.Buyer.complete() {
		return ErrBuyerIncomplete
	}

	switch f.Mode {
	case ModeHomeSaved:
		if f.SavedAddressID == nil || *f.SavedAddressID == uuid.Nil {
			return ErrAddressNotSelected
		}
	case ModeHomeManual:
		if f.Manual == nil || !f.Manual.complete() {
			return ErrManualAddressIncomplete
		}
	case ModeLockerPickup:
		if f.Pickup == nil || !f.Pickup.complete() {
			return ErrPickupIncomplete
		}
	default:
		return ErrInvalidDeliveryMode
	}

	if !f.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}
