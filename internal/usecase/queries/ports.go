package queries

import (
	"context"
	"time"

	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReads interface {
	ItemsByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemRow, error)
}

type DiscountStateReads interface {
	Get(ctx context.Context, userID uuid.UUID) (*shared.DiscountStateRow, error)
}

type AddressReads interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]shared.AddressRow, error)
}

type CouponCatalogReads interface {
	// ActiveForUser lists the coupons the shopper may pick from, already
	// filtered to active entries whose audience matches.
	ActiveForUser(ctx context.Context, member bool) ([]shared.CouponRow, error)
}

type DraftReads interface {
	Get(ctx context.Context, token, userID uuid.UUID) (*shared.DraftRow, error)
}

type BalanceReads interface {
	Balance(ctx context.Context) (int64, error)
}

type OrderView struct {
	OrderID             uuid.UUID
	OrderNumber         string
	Status              string
	PaymentMethod       string
	SubtotalCents       int64
	ShippingCents       int64
	CouponDiscountCents int64
	PointsDiscountCents int64
	UsedPoints          int64
	TotalCents          int64
	RecipientName       string
	RecipientPhone      string
	ShippingAddress     string
	PickupLocationID    string
	Lines               []OrderLineView
	CreatedAt           time.Time
}

type OrderLineView struct {
	Name           string
	UnitPriceCents int64
	Quantity       int
}

type OrderReads interface {
	ByID(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}
