package readstore

import (
	"context"
	"errors"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewColumns = `
	id, order_number, status, payment_method,
	subtotal_cents, shipping_cents, coupon_discount_cents,
	points_discount_cents, used_points, total_cents,
	recipient_name, recipient_phone,
	shipping_zipcode || ' ' || shipping_city || shipping_district || shipping_street AS shipping_address,
	COALESCE(pickup_location_id, '') AS pickup_location_id,
	created_at
`

const orderByIDQuery = `
SELECT ` + orderViewColumns + `
FROM orders
WHERE id = $1 AND user_id = $2
`

const ordersByUserQuery = `
SELECT ` + orderViewColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`

const orderLinesQuery = `
SELECT name, unit_price_cents, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`

func (s *OrderReadStore) ByID(ctx context.Context, orderID, userID uuid.UUID) (*queries.OrderView, error) {
	view, err := s.scanView(s.db.QueryRow(ctx, orderByIDQuery, orderID, userID))
	if err != nil {
		return nil, err
	}
	lines, err := s.linesFor(ctx, view.OrderID)
	if err != nil {
		return nil, err
	}
	view.Lines = lines
	return view, nil
}

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := s.db.Query(ctx, ordersByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var out []queries.OrderView
	for rows.Next() {
		view, err := s.scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return out, nil
}

// RecordByID rebuilds what the submission pipeline needs to replay a
// completed confirm: the result plus enough detail to regenerate the
// payment redirect.
func (s *OrderReadStore) RecordByID(ctx context.Context, orderID uuid.UUID) (*commands.OrderRecord, error) {
	const query = `
SELECT id, order_number, status, payment_method, total_cents
FROM orders
WHERE id = $1
`
	var rec commands.OrderRecord
	var status, method string
	err := s.db.QueryRow(ctx, query, orderID).Scan(
		&rec.Result.OrderID,
		&rec.Result.OrderNumber,
		&status,
		&method,
		&rec.Result.TotalCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	rec.Result.Status = order.Status(status)
	rec.PaymentMethod = order.PaymentMethod(method)

	const itemsQuery = `
SELECT item_id, name, unit_price_cents, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := s.db.Query(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line order.DraftLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.UnitPriceCents, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		rec.Lines = append(rec.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return &rec, nil
}

func (s *OrderReadStore) scanView(row pgx.Row) (*queries.OrderView, error) {
	var view queries.OrderView
	err := row.Scan(
		&view.OrderID,
		&view.OrderNumber,
		&view.Status,
		&view.PaymentMethod,
		&view.SubtotalCents,
		&view.ShippingCents,
		&view.CouponDiscountCents,
		&view.PointsDiscountCents,
		&view.UsedPoints,
		&view.TotalCents,
		&view.RecipientName,
		&view.RecipientPhone,
		&view.ShippingAddress,
		&view.PickupLocationID,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}
	return &view, nil
}

func (s *OrderReadStore) linesFor(ctx context.Context, orderID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := s.db.Query(ctx, orderLinesQuery, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var out []queries.OrderLineView
	for rows.Next() {
		var line queries.OrderLineView
		if err := rows.Scan(&line.Name, &line.UnitPriceCents, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return out, nil
}
