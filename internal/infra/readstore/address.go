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

type AddressReadStore struct {
	db db.DBTX
}

func NewAddressReadStore(db db.DBTX) *AddressReadStore {
	return &AddressReadStore{db: db}
}

const addressColumns = `id, recipient_name, recipient_phone, zipcode, city, district, address, is_default`

const addressListQuery = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at ASC
`

const addressByIDQuery = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1 AND id = $2
`

func (s *AddressReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]shared.AddressRow, error) {
	rows, err := s.db.Query(ctx, addressListQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses", err)
	}
	defer rows.Close()

	var out []shared.AddressRow
	for rows.Next() {
		var row shared.AddressRow
		if err := rows.Scan(
			&row.ID,
			&row.RecipientName,
			&row.RecipientPhone,
			&row.Zipcode,
			&row.City,
			&row.District,
			&row.Address,
			&row.IsDefault,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan address", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate addresses", err)
	}
	return out, nil
}

func (s *AddressReadStore) ByID(ctx context.Context, userID, addressID uuid.UUID) (*shared.AddressRow, error) {
	var row shared.AddressRow
	err := s.db.QueryRow(ctx, addressByIDQuery, userID, addressID).Scan(
		&row.ID,
		&row.RecipientName,
		&row.RecipientPhone,
		&row.Zipcode,
		&row.City,
		&row.District,
		&row.Address,
		&row.IsDefault,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get address", err)
	}
	return &row, nil
}
