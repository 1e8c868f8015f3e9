package commands

import (
	"context"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// PointsLedger is the remote balance counter. Deduct is authoritative: the
// server re-checks its live balance regardless of what a cached read said.
type PointsLedger interface {
	Balance(ctx context.Context) (int64, error)
	Deduct(ctx context.Context, amountCents int64, reason string, key uuid.UUID) error
	Refund(ctx context.Context, amountCents int64, reason string, key uuid.UUID) error
}

type CouponReads interface {
	ByCode(ctx context.Context, code string) (*shared.CouponRow, error)
	ByID(ctx context.Context, id int64) (*shared.CouponRow, error)
}

type CartReads interface {
	ItemsByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemRow, error)
}

type CartRepository interface {
	UpdateSelection(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) error
	// RemoveItems deletes purchased lines inside the submission transaction.
	RemoveItems(ctx context.Context, tx db.DBTX, userID uuid.UUID, itemIDs []uuid.UUID) error
}

type AddressReads interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]shared.AddressRow, error)
	ByID(ctx context.Context, userID, addressID uuid.UUID) (*shared.AddressRow, error)
}

type DiscountStateRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*shared.DiscountStateRow, error)
	Save(ctx context.Context, row shared.DiscountStateRow) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type DraftRepository interface {
	Create(ctx context.Context, row shared.DraftRow) error
	Get(ctx context.Context, token, userID uuid.UUID) (*shared.DraftRow, error)
	SaveDeliveryForm(ctx context.Context, token, userID uuid.UUID, form []byte) error
	// Consume flips a pending draft to consumed exactly once; the second
	// caller gets KindConflict.
	Consume(ctx context.Context, tx db.DBTX, token, userID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, draft *order.Draft) (order.Result, error)
	IncrementCouponUsage(ctx context.Context, tx db.DBTX, couponID int64) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key with ON CONFLICT DO NOTHING; inserted reports
	// whether this caller won the claim.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultOrderID uuid.UUID) error
}

// --- row <-> domain conversions shared by the cart and checkout commands ---

func snapshotFromRows(rows []shared.CartItemRow) (*cart.Snapshot, error) {
	items := make([]cart.LineItem, 0, len(rows))
	for _, r := range rows {
		li, err := cart.NewLineItem(r.ID, r.Name, r.UnitPriceCents, r.Quantity, r.Selected)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return cart.NewSnapshot(items)
}

func stateFromRow(row *shared.DiscountStateRow) discount.State {
	if row == nil {
		return discount.State{}
	}
	st := discount.State{
		SubtotalCents:       row.SubtotalCents,
		PointsRequested:     row.PointsRequested,
		PointsApplied:       row.PointsApplied,
		PointsDiscountCents: row.PointsDiscountCents,
	}
	if row.CouponID != nil || row.CouponFromCode {
		var id int64
		if row.CouponID != nil {
			id = *row.CouponID
		}
		st.Coupon = &discount.AppliedCoupon{
			ID:            id,
			FromCode:      row.CouponFromCode,
			Code:          row.CouponCode,
			Percent:       row.CouponPercent,
			Value:         row.CouponValue,
			MinSpendCents: row.CouponMinSpendCents,
			AmountCents:   row.CouponDiscountCents,
		}
	}
	return st
}

func rowFromState(userID uuid.UUID, st discount.State) shared.DiscountStateRow {
	row := shared.DiscountStateRow{
		UserID:              userID,
		SubtotalCents:       st.SubtotalCents,
		PointsRequested:     st.PointsRequested,
		PointsApplied:       st.PointsApplied,
		PointsDiscountCents: st.PointsDiscountCents,
	}
	if c := st.Coupon; c != nil {
		if !c.FromCode {
			id := c.ID
			row.CouponID = &id
		}
		row.CouponFromCode = c.FromCode
		row.CouponCode = c.Code
		row.CouponPercent = c.Percent
		row.CouponValue = c.Value
		row.CouponMinSpendCents = c.MinSpendCents
		row.CouponDiscountCents = c.AmountCents
	}
	return row
}

func appliedFromRow(row *shared.CouponRow, fromCode bool) discount.AppliedCoupon {
	return discount.AppliedCoupon{
		ID:            row.ID,
		FromCode:      fromCode,
		Code:          row.Code,
		Percent:       row.DiscountType == "percent",
		Value:         row.Value,
		MinSpendCents: row.MinSpendCents,
	}
}
