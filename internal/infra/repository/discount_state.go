package repository

import (
	"context"
	"errors"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DiscountStateRepository persists the per-shopper reconciler state, one
// row per user, upserted on every mutation.
type DiscountStateRepository struct {
	db db.DBTX
}

func NewDiscountStateRepository(db db.DBTX) *DiscountStateRepository {
	return &DiscountStateRepository{db: db}
}

const discountStateGetQuery = `
SELECT user_id, subtotal_cents,
       coupon_id, coupon_from_code, coupon_code, coupon_percent,
       coupon_value, coupon_min_spend_cents, coupon_discount_cents,
       points_requested, points_applied, points_discount_cents,
       updated_at
FROM discount_states
WHERE user_id = $1
`

const discountStateUpsertQuery = `
INSERT INTO discount_states (
    user_id, subtotal_cents,
    coupon_id, coupon_from_code, coupon_code, coupon_percent,
    coupon_value, coupon_min_spend_cents, coupon_discount_cents,
    points_requested, points_applied, points_discount_cents,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
ON CONFLICT (user_id) DO UPDATE SET
    subtotal_cents         = EXCLUDED.subtotal_cents,
    coupon_id              = EXCLUDED.coupon_id,
    coupon_from_code       = EXCLUDED.coupon_from_code,
    coupon_code            = EXCLUDED.coupon_code,
    coupon_percent         = EXCLUDED.coupon_percent,
    coupon_value           = EXCLUDED.coupon_value,
    coupon_min_spend_cents = EXCLUDED.coupon_min_spend_cents,
    coupon_discount_cents  = EXCLUDED.coupon_discount_cents,
    points_requested       = EXCLUDED.points_requested,
    points_applied         = EXCLUDED.points_applied,
    points_discount_cents  = EXCLUDED.points_discount_cents,
    updated_at             = NOW()
`

func (r *DiscountStateRepository) Get(ctx context.Context, userID uuid.UUID) (*shared.DiscountStateRow, error) {
	var row shared.DiscountStateRow
	err := r.db.QueryRow(ctx, discountStateGetQuery, userID).Scan(
		&row.UserID,
		&row.SubtotalCents,
		&row.CouponID,
		&row.CouponFromCode,
		&row.CouponCode,
		&row.CouponPercent,
		&row.CouponValue,
		&row.CouponMinSpendCents,
		&row.CouponDiscountCents,
		&row.PointsRequested,
		&row.PointsApplied,
		&row.PointsDiscountCents,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount state not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get discount state", err)
	}
	return &row, nil
}

func (r *DiscountStateRepository) Save(ctx context.Context, row shared.DiscountStateRow) error {
	_, err := r.db.Exec(ctx, discountStateUpsertQuery,
		row.UserID,
		row.SubtotalCents,
		row.CouponID,
		row.CouponFromCode,
		row.CouponCode,
		row.CouponPercent,
		row.CouponValue,
		row.CouponMinSpendCents,
		row.CouponDiscountCents,
		row.PointsRequested,
		row.PointsApplied,
		row.PointsDiscountCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save discount state", err)
	}
	return nil
}

func (r *DiscountStateRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM discount_states WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to clear discount state", err)
	}
	return nil
}
