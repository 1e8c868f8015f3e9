package readstore

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

const cartItemsQuery = `
SELECT id, name, unit_price_cents, quantity, selected
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC, id ASC
`

func (s *CartReadStore) ItemsByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemRow, error) {
	rows, err := s.db.Query(ctx, cartItemsQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var out []shared.CartItemRow
	for rows.Next() {
		var row shared.CartItemRow
		if err := rows.Scan(&row.ID, &row.Name, &row.UnitPriceCents, &row.Quantity, &row.Selected); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart items", err)
	}
	return out, nil
}
