package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems             = errors.New("order draft needs at least one line item")
	ErrDiscountExceedsSubtotal = errors.New("discount total exceeds subtotal")
	ErrCouponIDUnresolved      = errors.New("coupon id not resolved to a catalog id")
	ErrShippingAddressMissing  = errors.New("shipping address missing")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrNegativePoints          = errors.New("used points cannot be negative")
)

type PaymentMethod string

const (
	PaymentEpay    PaymentMethod = "epay"
	PaymentLinepay PaymentMethod = "linepay"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentEpay, PaymentLinepay:
		return true
	default:
		return false
	}
}

type DraftLine struct {
	ItemID         uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
}

func (l DraftLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// DraftCoupon always carries the numeric catalog id; the order-create
// contract rejects anything else.
type DraftCoupon struct {
	ID            int64
	Code          string
	DiscountCents int64
}

// ShippingAddress is the resolved destination, whatever delivery mode
// produced it (saved address, manual entry, or locker address).
type ShippingAddress struct {
	Zipcode  string `json:"zipcode"`
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
}

func (a ShippingAddress) empty() bool {
	return strings.TrimSpace(a.Zipcode) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.District) == "" &&
		strings.TrimSpace(a.Street) == ""
}

// Logistics carries carrier extras such as the locker pickup point.
type Logistics struct {
	PickupLocationID string `json:"pickup_location_id,omitempty"`
}

type Totals struct {
	SubtotalCents      int64
	ShippingCents      int64
	DiscountTotalCents int64
	PayableCents       int64
}

type DraftParams struct {
	Form                DeliveryForm
	ShippingAddress     ShippingAddress
	Logistics           *Logistics
	Lines               []DraftLine
	Coupon              *DraftCoupon
	UsedPoints          int64
	PointsDiscountCents int64
	ShippingFeeCents    int64
}

// Draft is the immutable, fully composed order built once per submission
// attempt and discarded after it succeeds or permanently fails.
type Draft struct {
	buyer      Buyer
	recipient  Recipient
	delivery   DeliveryForm
	shipping   ShippingAddress
	logistics  *Logistics
	lines      []DraftLine
	coupon     *DraftCoupon
	usedPoints int64
	totals     Totals
}

func NewDraft(p DraftParams) (*Draft, error) {
	if err := p.Form.Validate(); err != nil {
		return nil, err
	}
	if !p.Form.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if len(p.Lines) == 0 {
		return nil, ErrNoLineItems
	}
	if p.ShippingAddress.empty() {
		return nil, ErrShippingAddressMissing
	}
	if p.Coupon != nil && p.Coupon.ID <= 0 {
		return nil, ErrCouponIDUnresolved
	}
	if p.UsedPoints < 0 || p.PointsDiscountCents < 0 {
		return nil, ErrNegativePoints
	}

	var subtotal int64
	for _, l := range p.Lines {
		subtotal += l.TotalCents()
	}

	var discountTotal int64
	if p.Coupon != nil {
		discountTotal += p.Coupon.DiscountCents
	}
	discountTotal += p.PointsDiscountCents
	if discountTotal > subtotal {
		return nil, ErrDiscountExceedsSubtotal
	}

	payable := subtotal - discountTotal + p.ShippingFeeCents
	if payable < 0 {
		payable = 0
	}

	lines := make([]DraftLine, len(p.Lines))
	copy(lines, p.Lines)

	var coupon *DraftCoupon
	if p.Coupon != nil {
		c := *p.Coupon
		coupon = &c
	}

	var logistics *Logistics
	if p.Logistics != nil {
		l := *p.Logistics
		logistics = &l
	}

	recipient := p.Form.Recipient
	if recipient.Name == "" {
		// Buyer receives their own order unless a recipient was given.
		recipient = Recipient{Name: p.Form.Buyer.Name, Phone: p.Form.Buyer.Phone}
	}

	return &Draft{
		buyer:      p.Form.Buyer,
		recipient:  recipient,
		delivery:   p.Form,
		shipping:   p.ShippingAddress,
		logistics:  logistics,
		lines:      lines,
		coupon:     coupon,
		usedPoints: p.UsedPoints,
		totals: Totals{
			SubtotalCents:      subtotal,
			ShippingCents:      p.ShippingFeeCents,
			DiscountTotalCents: discountTotal,
			PayableCents:       payable,
		},
	}, nil
}

func (d *Draft) Buyer() Buyer                     { return d.buyer }
func (d *Draft) Recipient() Recipient             { return d.recipient }
func (d *Draft) Delivery() DeliveryForm           { return d.delivery }
func (d *Draft) ShippingAddress() ShippingAddress { return d.shipping }
func (d *Draft) UsedPoints() int64                { return d.usedPoints }
func (d *Draft) Totals() Totals                   { return d.totals }
func (d *Draft) PaymentMethod() PaymentMethod     { return d.delivery.PaymentMethod }

func (d *Draft) Logistics() *Logistics {
	if d.logistics == nil {
		return nil
	}
	l := *d.logistics
	return &l
}

func (d *Draft) Lines() []DraftLine {
	out := make([]DraftLine, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *Draft) Coupon() *DraftCoupon {
	if d.coupon == nil {
		return nil
	}
	c := *d.coupon
	return &c
}

// Status of a submitted order as reported back by order-create.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

type Result struct {
	OrderID     uuid.UUID
	OrderNumber string
	TotalCents  int64
	Status      Status
}
