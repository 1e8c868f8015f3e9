package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// UpdateSelection flips selection flags in one statement: everything in
// selectedIDs on, everything else off.
func (r *CartRepository) UpdateSelection(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) error {
	const query = `
UPDATE cart_items
SET selected = (id = ANY($2)), updated_at = NOW()
WHERE user_id = $1
`
	tag, err := r.db.Exec(ctx, query, userID, selectedIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart selection", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart is empty", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) RemoveItems(ctx context.Context, tx db.DBTX, userID uuid.UUID, itemIDs []uuid.UUID) error {
	const query = `
DELETE FROM cart_items
WHERE user_id = $1 AND id = ANY($2)
`
	if _, err := tx.Exec(ctx, query, userID, itemIDs); err != nil {
		return infra.WrapRepoErr("failed to remove cart items", err)
	}
	return nil
}
