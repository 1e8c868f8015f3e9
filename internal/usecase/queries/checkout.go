package queries

import (
	"context"
	"encoding/json"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/transfer"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckoutPage is everything the checkout page needs in one response: the
// transferred selection with its summary, the delivery form as last saved,
// the shopper's address book, and the points balance when available.
type CheckoutPage struct {
	Token               uuid.UUID
	Lines               []CheckoutLine
	SubtotalCents       int64
	CouponCode          string
	CouponDiscountCents int64
	UsedPoints          int64
	PointsDiscountCents int64
	ShippingCents       int64
	PayableCents        int64
	DeliveryForm        order.DeliveryForm
	Addresses           []shared.AddressRow
	BalanceCents        int64
	BalanceKnown        bool
	ExpiresAt           time.Time
}

type CheckoutLine struct {
	ItemID         uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
}

type CheckoutQueries interface {
	PageByToken(ctx context.Context, userID, token uuid.UUID) (*CheckoutPage, error)
}

type checkoutQueriesImpl struct {
	draftReads    DraftReads
	cartReads     CartReads
	addrReads     AddressReads
	balanceReads  BalanceReads
	clock         clock.Clock
	pointValue    int64
	shippingCents int64
}

func NewCheckoutQueries(
	draftReads DraftReads,
	cartReads CartReads,
	addrReads AddressReads,
	balanceReads BalanceReads,
	clk clock.Clock,
	cfg config.Config,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		draftReads:    draftReads,
		cartReads:     cartReads,
		addrReads:     addrReads,
		balanceReads:  balanceReads,
		clock:         clk,
		pointValue:    cfg.Points.PointValueCents,
		shippingCents: cfg.Checkout.ShippingCents,
	}
}

func (q *checkoutQueriesImpl) PageByToken(ctx context.Context, userID, token uuid.UUID) (*CheckoutPage, error) {
	row, err := q.draftReads.Get(ctx, token, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDraftNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if row.Status == shared.DraftStatusConsumed {
		return nil, errs.ErrDraftConsumed
	}
	if q.clock.Now().After(row.ExpiresAt) {
		return nil, errs.ErrDraftExpired
	}

	payload, err := transfer.Decode(row.Payload)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var form order.DeliveryForm
	if err := json.Unmarshal(row.DeliveryForm, &form); err != nil {
		return nil, errs.Wrap(err, "decode delivery form")
	}

	items, err := q.cartReads.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCartNotFound)
	}

	byID := make(map[uuid.UUID]shared.CartItemRow, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	lines := make([]CheckoutLine, 0, len(payload.SelectedItemIDs))
	lineItems := make([]cart.LineItem, 0, len(payload.SelectedItemIDs))
	for _, id := range payload.SelectedItemIDs {
		it, ok := byID[id]
		if !ok {
			// Line vanished from the cart after the transfer; the page shows
			// what remains and the confirm step re-validates strictly.
			continue
		}
		li, liErr := cart.NewLineItem(it.ID, it.Name, it.UnitPriceCents, it.Quantity, true)
		if liErr != nil {
			return nil, errs.Mark(liErr, errs.ErrDomainValidation)
		}
		lineItems = append(lineItems, li)
		lines = append(lines, CheckoutLine{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		})
	}
	if len(lines) == 0 {
		return nil, errs.ErrEmptySelection
	}
	snap, err := cart.NewSnapshot(lineItems)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	subtotal := snap.SubtotalCents()

	// Rebuild the discount view from the transferred payload so the summary
	// re-clamps against the live subtotal instead of trusting page-one math.
	st := discount.State{
		SubtotalCents:       payload.SummarySubtotalCents,
		PointsRequested:     payload.PointsToUse,
		PointsApplied:       payload.PointsToUse,
		PointsDiscountCents: payload.PointsDiscountCents,
	}
	if payload.Reset {
		st = discount.State{}
	} else if payload.CouponFromCode || payload.CouponID != nil {
		var id int64
		if payload.CouponID != nil {
			id = *payload.CouponID
		}
		// The full rule rides in the payload so Rehydrate can recompute the
		// amount against the live subtotal instead of zeroing it.
		st.Coupon = &discount.AppliedCoupon{
			ID:            id,
			FromCode:      payload.CouponFromCode,
			Code:          payload.CouponCode,
			Percent:       payload.CouponPercent,
			Value:         payload.CouponValue,
			MinSpendCents: payload.CouponMinSpendCents,
			AmountCents:   payload.CouponDiscountCents,
		}
	}
	rec, err := discount.Rehydrate(st, subtotal, q.pointValue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Address book and balance load concurrently. The balance observation is
	// issuance-ordered: the seq is taken before the read starts, so a slow
	// response cannot clobber state mutated while it was in flight.
	type addrResult struct {
		rows []shared.AddressRow
		err  error
	}
	type balanceResult struct {
		cents int64
		err   error
	}

	seq := rec.IssueReadSeq()
	addrCh := make(chan addrResult, 1)
	balanceCh := make(chan balanceResult, 1)

	go func() {
		rows, addrErr := q.addrReads.ListByUser(ctx, userID)
		addrCh <- addrResult{rows: rows, err: addrErr}
	}()
	go func() {
		cents, balErr := q.balanceReads.Balance(ctx)
		balanceCh <- balanceResult{cents: cents, err: balErr}
	}()

	addrs := <-addrCh
	if addrs.err != nil {
		return nil, errs.Mark(addrs.err, errs.ErrDatabaseOperationFailed)
	}
	if bal := <-balanceCh; bal.err == nil {
		rec.ObserveBalance(bal.cents, seq)
	}

	view := rec.State()
	var couponCode string
	var couponDiscount int64
	if view.Coupon != nil {
		couponCode = view.Coupon.Code
		couponDiscount = view.Coupon.AmountCents
	}
	balance, known := rec.BalanceCents()

	return &CheckoutPage{
		Token:               token,
		Lines:               lines,
		SubtotalCents:       subtotal,
		CouponCode:          couponCode,
		CouponDiscountCents: couponDiscount,
		UsedPoints:          view.PointsApplied,
		PointsDiscountCents: view.PointsDiscountCents,
		ShippingCents:       q.shippingCents,
		PayableCents:        view.PayableCents(q.shippingCents),
		DeliveryForm:        form,
		Addresses:           addrs.rows,
		BalanceCents:        balance,
		BalanceKnown:        known,
		ExpiresAt:           row.ExpiresAt,
	}, nil
}
