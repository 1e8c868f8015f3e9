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

type DraftRepository struct {
	db db.DBTX
}

func NewDraftRepository(db db.DBTX) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Create(ctx context.Context, row shared.DraftRow) error {
	const query = `
INSERT INTO checkout_drafts (token, user_id, payload, delivery_form, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.db.Exec(ctx, query,
		row.Token, row.UserID, row.Payload, row.DeliveryForm,
		row.Status, row.ExpiresAt, row.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create draft", err)
	}
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, token, userID uuid.UUID) (*shared.DraftRow, error) {
	const query = `
SELECT token, user_id, payload, delivery_form, status, expires_at, created_at
FROM checkout_drafts
WHERE token = $1 AND user_id = $2
`
	var row shared.DraftRow
	err := r.db.QueryRow(ctx, query, token, userID).Scan(
		&row.Token,
		&row.UserID,
		&row.Payload,
		&row.DeliveryForm,
		&row.Status,
		&row.ExpiresAt,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get draft", err)
	}
	return &row, nil
}

func (r *DraftRepository) SaveDeliveryForm(ctx context.Context, token, userID uuid.UUID, form []byte) error {
	const query = `
UPDATE checkout_drafts
SET delivery_form = $3
WHERE token = $1 AND user_id = $2 AND status = 'pending'
`
	tag, err := r.db.Exec(ctx, query, token, userID, form)
	if err != nil {
		return infra.WrapRepoErr("failed to save delivery form", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending draft not found", nil, infra.KindNotFound)
	}
	return nil
}

// Consume flips pending -> consumed with a guarded UPDATE; losing the race
// surfaces as KindConflict, which is how a draft submits exactly once.
func (r *DraftRepository) Consume(ctx context.Context, tx db.DBTX, token, userID uuid.UUID) error {
	const query = `
UPDATE checkout_drafts
SET status = 'consumed'
WHERE token = $1 AND user_id = $2 AND status = 'pending'
`
	tag, err := tx.Exec(ctx, query, token, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to consume draft", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("draft already consumed or missing", nil, infra.KindConflict)
	}
	return nil
}

// DeleteExpired is run periodically; expired pending drafts have no other
// cleanup path.
func (r *DraftRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM checkout_drafts WHERE expires_at < NOW()`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired drafts", err)
	}
	return tag.RowsAffected(), nil
}
