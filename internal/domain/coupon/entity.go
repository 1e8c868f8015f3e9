package coupon

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusDisabled Status = "disabled"
)

type TargetType string

const (
	TargetAll     TargetType = "all"
	TargetMembers TargetType = "members"
)

// RejectReason is the machine-readable reason a coupon was refused.
// Eligibility checks always produce one of these, never a generic error.
type RejectReason string

const (
	ReasonNotFound      RejectReason = "not_found"
	ReasonExpired       RejectReason = "expired"
	ReasonBelowMinSpend RejectReason = "below_min_spend"
	ReasonNotEligible   RejectReason = "not_eligible"
	ReasonUsageExceeded RejectReason = "usage_exceeded"
)

type RejectedError struct {
	Reason RejectReason
	Code   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("coupon rejected (%s): %s", e.Reason, e.Code)
}

func Rejected(reason RejectReason, code string) *RejectedError {
	return &RejectedError{Reason: reason, Code: code}
}

// Entry is one coupon catalog row after ingestion normalization: the upstream
// code/coupon_code naming split is resolved before an Entry exists.
type Entry struct {
	id         int64
	code       Code
	discount   Discount
	minSpend   int64
	usageLimit int
	usedCount  int
	target     TargetType
	isValid    bool
	status     Status
	validFrom  *time.Time
	validTo    *time.Time
}

func NewEntry(
	id int64,
	code string,
	discountType string,
	value int64,
	minSpendCents int64,
	usageLimit, usedCount int,
	target TargetType,
	isValid bool,
	status Status,
	validFrom, validTo *time.Time,
) (*Entry, error) {
	normalized, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	kind, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(kind, value)
	if err != nil {
		return nil, err
	}

	return &Entry{
		id:         id,
		code:       normalized,
		discount:   discount,
		minSpend:   minSpendCents,
		usageLimit: usageLimit,
		usedCount:  usedCount,
		target:     target,
		isValid:    isValid,
		status:     status,
		validFrom:  validFrom,
		validTo:    validTo,
	}, nil
}

func (e *Entry) ID() int64             { return e.id }
func (e *Entry) Code() Code            { return e.code }
func (e *Entry) Discount() Discount    { return e.discount }
func (e *Entry) MinSpendCents() int64  { return e.minSpend }
func (e *Entry) UsageLimit() int       { return e.usageLimit }
func (e *Entry) UsedCount() int        { return e.usedCount }
func (e *Entry) Target() TargetType    { return e.target }
func (e *Entry) Status() Status        { return e.status }

func (e *Entry) expiredAt(now time.Time) bool {
	if e.status == StatusExpired {
		return true
	}
	if e.validFrom != nil && now.Before(*e.validFrom) {
		return true
	}
	if e.validTo != nil && now.After(*e.validTo) {
		return true
	}
	return false
}

// CheckEligibility runs the checks in fixed order; the first failure wins:
// validity flag, expiry/status, min spend, audience restriction, usage limit.
func (e *Entry) CheckEligibility(subtotalCents int64, member bool, now time.Time) *RejectedError {
	if !e.isValid || e.status == StatusDisabled {
		return Rejected(ReasonNotFound, e.code.String())
	}
	if e.expiredAt(now) {
		return Rejected(ReasonExpired, e.code.String())
	}
	if subtotalCents < e.minSpend {
		return Rejected(ReasonBelowMinSpend, e.code.String())
	}
	if e.target == TargetMembers && !member {
		return Rejected(ReasonNotEligible, e.code.String())
	}
	if e.usageLimit > 0 && e.usedCount >= e.usageLimit {
		return Rejected(ReasonUsageExceeded, e.code.String())
	}
	return nil
}

// MeetsMinSpend is re-checked whenever the subtotal changes; a coupon whose
// floor is no longer satisfied must be cleared with notification, never kept.
func (e *Entry) MeetsMinSpend(subtotalCents int64) bool {
	return subtotalCents >= e.minSpend
}

func (e *Entry) AmountCents(subtotalCents int64) int64 {
	return e.discount.AmountCents(subtotalCents)
}
