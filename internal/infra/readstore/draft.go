package readstore

import (
	"context"
	"errors"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DraftReadStore struct {
	db db.DBTX
}

func NewDraftReadStore(db db.DBTX) *DraftReadStore {
	return &DraftReadStore{db: db}
}

const draftByTokenQuery = `
SELECT token, user_id, payload, delivery_form, status, expires_at, created_at
FROM checkout_drafts
WHERE token = $1 AND user_id = $2
`

func (s *DraftReadStore) Get(ctx context.Context, token, userID uuid.UUID) (*shared.DraftRow, error) {
	var row shared.DraftRow
	err := s.db.QueryRow(ctx, draftByTokenQuery, token, userID).Scan(
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
