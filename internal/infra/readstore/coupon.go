package readstore

import (
	"context"
	"errors"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

// The catalog carries two spellings of the code column from an old backfill;
// COALESCE normalizes them here so nothing downstream ever sees the split.
const couponColumns = `
	id,
	COALESCE(code, coupon_code, '') AS code,
	discount_type,
	value,
	min_spend_cents,
	usage_limit,
	used_count,
	target_type,
	is_valid,
	status,
	valid_from,
	valid_to
`

// Codes are normalized to upper case on input; the catalog rows predate that
// rule, so the lookup folds the stored spelling too.
const couponByCodeQuery = `
SELECT ` + couponColumns + `
FROM coupons
WHERE UPPER(COALESCE(code, coupon_code)) = $1
`

const couponByIDQuery = `
SELECT ` + couponColumns + `
FROM coupons
WHERE id = $1
`

const activeCouponsQuery = `
SELECT ` + couponColumns + `
FROM coupons
WHERE is_valid = TRUE
  AND status = 'active'
  AND (target_type = 'all' OR ($1 AND target_type = 'members'))
  AND (valid_from IS NULL OR valid_from <= NOW())
  AND (valid_to IS NULL OR valid_to >= NOW())
  AND (usage_limit = 0 OR used_count < usage_limit)
ORDER BY min_spend_cents ASC, id ASC
`

func (s *CouponReadStore) ByCode(ctx context.Context, code string) (*shared.CouponRow, error) {
	return s.queryOne(ctx, couponByCodeQuery, code)
}

func (s *CouponReadStore) ByID(ctx context.Context, id int64) (*shared.CouponRow, error) {
	return s.queryOne(ctx, couponByIDQuery, id)
}

func (s *CouponReadStore) queryOne(ctx context.Context, query string, arg any) (*shared.CouponRow, error) {
	var row shared.CouponRow
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&row.ID,
		&row.Code,
		&row.DiscountType,
		&row.Value,
		&row.MinSpendCents,
		&row.UsageLimit,
		&row.UsedCount,
		&row.TargetType,
		&row.IsValid,
		&row.Status,
		&row.ValidFrom,
		&row.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon", err)
	}
	return &row, nil
}

func (s *CouponReadStore) ActiveForUser(ctx context.Context, member bool) ([]shared.CouponRow, error) {
	rows, err := s.db.Query(ctx, activeCouponsQuery, member)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active coupons", err)
	}
	defer rows.Close()

	var out []shared.CouponRow
	for rows.Next() {
		var row shared.CouponRow
		if err := rows.Scan(
			&row.ID,
			&row.Code,
			&row.DiscountType,
			&row.Value,
			&row.MinSpendCents,
			&row.UsageLimit,
			&row.UsedCount,
			&row.TargetType,
			&row.IsValid,
			&row.Status,
			&row.ValidFrom,
			&row.ValidTo,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return out, nil
}
