package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.

type CouponRow struct {
	ID            int64
	Code          string
	DiscountType  string
	Value         int64
	MinSpendCents int64
	UsageLimit    int
	UsedCount     int
	TargetType    string
	IsValid       bool
	Status        string
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

type CartItemRow struct {
	ID             uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
	Selected       bool
}

type AddressRow struct {
	ID             uuid.UUID
	RecipientName  string
	RecipientPhone string
	Zipcode        string
	City           string
	District       string
	Address        string
	IsDefault      bool
}

// DiscountStateRow is the persisted reconciler state for one shopper's cart.
// The applied coupon is stored denormalized so rehydration can re-clamp
// without a catalog read.
type DiscountStateRow struct {
	UserID              uuid.UUID
	SubtotalCents       int64
	CouponID            *int64
	CouponFromCode      bool
	CouponCode          string
	CouponPercent       bool
	CouponValue         int64
	CouponMinSpendCents int64
	CouponDiscountCents int64
	PointsRequested     int64
	PointsApplied       int64
	PointsDiscountCents int64
	UpdatedAt           time.Time
}

const (
	DraftStatusPending  = "pending"
	DraftStatusConsumed = "consumed"
)

// DraftRow is the short-lived server-side checkout draft keyed by an opaque
// token; it replaces passing URL-encoded state between pages.
type DraftRow struct {
	Token        uuid.UUID
	UserID       uuid.UUID
	Payload      []byte // versioned transfer payload
	DeliveryForm []byte // delivery state machine, JSON
	Status       string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)
