package repository

import (
	"context"
	"errors"
	"time"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key. ON CONFLICT DO NOTHING keeps the first writer's
// row; RowsAffected tells the caller whether it won.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, 'processing', $5, NOW())
ON CONFLICT (key, user_id) DO NOTHING
`
	tag, err := r.db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
SELECT key, user_id, status, request_hash, result_order_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`
	var rec shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key,
		&rec.UserID,
		&rec.Status,
		&rec.RequestHash,
		&rec.ResultOrderID,
		&rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultOrderID uuid.UUID) error {
	const query = `
UPDATE idempotency_keys
SET status = 'completed', result_order_id = $3
WHERE key = $1 AND user_id = $2 AND status = 'processing'
`
	tag, err := tx.Exec(ctx, query, key, userID, resultOrderID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not in processing state", nil, infra.KindConflict)
	}
	return nil
}
