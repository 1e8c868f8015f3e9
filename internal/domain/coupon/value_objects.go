package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode    = errors.New("invalid coupon code format")
	ErrInvalidDiscountType  = errors.New("unknown discount type")
	ErrInvalidDiscountValue = errors.New("discount value out of range")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes user input: trim plus case-fold, so "save10" matches a
// catalog entry stored as "SAVE10".
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercent, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

type Discount struct {
	kind  DiscountType
	value int64
}

func NewDiscount(kind DiscountType, value int64) (Discount, error) {
	switch kind {
	case DiscountPercent:
		if value < 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountValue
		}
	case DiscountFixed:
		if value < 0 {
			return Discount{}, ErrInvalidDiscountValue
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() int64       { return d.value }

// AmountCents computes the discount against a subtotal:
// percent = round(subtotal * value / 100), fixed = min(value, subtotal).
// The result is always within [0, subtotal].
func (d Discount) AmountCents(subtotalCents int64) int64 {
	if subtotalCents <= 0 {
		return 0
	}

	var amount int64
	switch d.kind {
	case DiscountPercent:
		amount = (subtotalCents*d.value + 50) / 100 // integer round-half-up
	case DiscountFixed:
		amount = d.value
	}

	if amount > subtotalCents {
		amount = subtotalCents
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}
