//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateCartItem(t *testing.T, db DBLike, userID uuid.UUID, name string, unitPriceCents int64, quantity int, selected bool) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO cart_items (id, user_id, name, unit_price_cents, quantity, selected) VALUES ($1, $2, $3, $4, $5, $6)",
		itemID, userID, name, unitPriceCents, quantity, selected)
	require.NoError(t, err)

	return itemID
}

func CreateCoupon(t *testing.T, db DBLike, code, discountType string, value, minSpendCents int64, targetType string) int64 {
	t.Helper()

	var id int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO coupons (code, discount_type, value, min_spend_cents, target_type) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		code, discountType, value, minSpendCents, targetType).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateLegacyCoupon writes the pre-backfill coupon_code column so tests can
// prove the COALESCE normalization on the read side.
func CreateLegacyCoupon(t *testing.T, db DBLike, code, discountType string, value, minSpendCents int64) int64 {
	t.Helper()

	var id int64
	ctx := context.Background()
	err := db.QueryRow(ctx,
		"INSERT INTO coupons (coupon_code, discount_type, value, min_spend_cents) VALUES ($1, $2, $3, $4) RETURNING id",
		code, discountType, value, minSpendCents).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateAddress(t *testing.T, db DBLike, userID uuid.UUID, recipientName string, isDefault bool) uuid.UUID {
	t.Helper()

	addressID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO addresses (id, user_id, recipient_name, recipient_phone, zipcode, city, district, address, is_default) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		addressID, userID, recipientName, "090-0000-0000", "100-0001", "Chiyoda", "Kanda", "1-2-3", isDefault)
	require.NoError(t, err)

	return addressID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Base coupon catalog every suite can rely on
	_, err := pool.Exec(ctx, `
		INSERT INTO coupons (code, discount_type, value, min_spend_cents, target_type) VALUES
		    ('SAVE10', 'percent', 10, 0, 'all'),
		    ('MEMBER20', 'percent', 20, 0, 'members'),
		    ('FLAT500', 'fixed', 500, 5000, 'all')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
