package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct {
	clock clock.Clock
}

func NewOrderRepository(clk clock.Clock) *OrderRepository {
	return &OrderRepository{clock: clk}
}

const orderInsertQuery = `
INSERT INTO orders (
    id, user_id, order_number, status, payment_method,
    subtotal_cents, shipping_cents,
    coupon_id, coupon_code, coupon_discount_cents,
    used_points, points_discount_cents, total_cents,
    recipient_name, recipient_phone,
    shipping_zipcode, shipping_city, shipping_district, shipping_street,
    pickup_location_id, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW()
)
`

const orderItemInsertQuery = `
INSERT INTO order_items (order_id, item_id, name, unit_price_cents, quantity)
VALUES ($1, $2, $3, $4, $5)
`

// Create writes the order and its lines in the caller's transaction and is
// the single order-create call of a submission attempt.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, draft *order.Draft) (order.Result, error) {
	orderID := uuid.New()
	orderNumber := r.newOrderNumber()
	totals := draft.Totals()

	var couponID *int64
	var couponCode string
	var couponDiscount int64
	if c := draft.Coupon(); c != nil {
		id := c.ID
		couponID = &id
		couponCode = c.Code
		couponDiscount = c.DiscountCents
	}

	var pickupLocationID *string
	if l := draft.Logistics(); l != nil {
		pickupLocationID = &l.PickupLocationID
	}

	shipping := draft.ShippingAddress()
	recipient := draft.Recipient()

	_, err := tx.Exec(ctx, orderInsertQuery,
		orderID,
		userID,
		orderNumber,
		string(order.StatusPending),
		string(draft.PaymentMethod()),
		totals.SubtotalCents,
		totals.ShippingCents,
		couponID,
		couponCode,
		couponDiscount,
		draft.UsedPoints(),
		totals.DiscountTotalCents-couponDiscount,
		totals.PayableCents,
		recipient.Name,
		recipient.Phone,
		shipping.Zipcode,
		shipping.City,
		shipping.District,
		shipping.Street,
		pickupLocationID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return order.Result{}, infra.WrapRepoErr("order number collision", err, infra.KindDuplicateKey)
		}
		return order.Result{}, infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range draft.Lines() {
		if _, err := tx.Exec(ctx, orderItemInsertQuery,
			orderID, line.ItemID, line.Name, line.UnitPriceCents, line.Quantity,
		); err != nil {
			return order.Result{}, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return order.Result{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		TotalCents:  totals.PayableCents,
		Status:      order.StatusPending,
	}, nil
}

// IncrementCouponUsage counts one redemption, guarded against racing past
// the usage limit.
func (r *OrderRepository) IncrementCouponUsage(ctx context.Context, tx db.DBTX, couponID int64) error {
	const query = `
UPDATE coupons
SET used_count = used_count + 1
WHERE id = $1 AND (usage_limit = 0 OR used_count < usage_limit)
`
	tag, err := tx.Exec(ctx, query, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon usage limit reached", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", r.clock.Now().Format("20060102"), suffix)
}
