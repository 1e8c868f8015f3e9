package queries

import (
	"context"

	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartView is the full cart page: live items, the reconciled discount
// state, the coupons on offer, and the points balance when it arrived in
// time.
type CartView struct {
	Items            []shared.CartItemRow
	State            discount.State
	ShippingCents    int64
	PayableCents     int64
	AvailableCoupons []shared.CouponRow
	BalanceCents     int64
	BalanceKnown     bool
	Notices          []discount.Notice
}

type CartQueries interface {
	Get(ctx context.Context, userID uuid.UUID, member bool) (*CartView, error)
}

type cartQueriesImpl struct {
	cartReads     CartReads
	stateReads    DiscountStateReads
	couponCatalog CouponCatalogReads
	balanceReads  BalanceReads
	pointValue    int64
	shippingCents int64
}

func NewCartQueries(
	cartReads CartReads,
	stateReads DiscountStateReads,
	couponCatalog CouponCatalogReads,
	balanceReads BalanceReads,
	cfg config.Config,
) CartQueries {
	return &cartQueriesImpl{
		cartReads:     cartReads,
		stateReads:    stateReads,
		couponCatalog: couponCatalog,
		balanceReads:  balanceReads,
		pointValue:    cfg.Points.PointValueCents,
		shippingCents: cfg.Checkout.ShippingCents,
	}
}

func (q *cartQueriesImpl) Get(ctx context.Context, userID uuid.UUID, member bool) (*CartView, error) {
	items, err := q.cartReads.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCartNotFound)
	}

	var subtotal int64
	for _, it := range items {
		if it.Selected {
			subtotal += it.UnitPriceCents * int64(it.Quantity)
		}
	}

	row, err := q.stateReads.Get(ctx, userID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rec, err := discount.Rehydrate(reconcilerStateFromRow(row), subtotal, q.pointValue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Catalog and balance are independent reads; neither blocks the other.
	// The balance read is issuance-ordered so a response that raced with a
	// later mutation cannot overwrite fresher knowledge.
	type catalogResult struct {
		coupons []shared.CouponRow
		err     error
	}
	type balanceResult struct {
		cents int64
		err   error
	}

	seq := rec.IssueReadSeq()
	catalogCh := make(chan catalogResult, 1)
	balanceCh := make(chan balanceResult, 1)

	go func() {
		coupons, catErr := q.couponCatalog.ActiveForUser(ctx, member)
		catalogCh <- catalogResult{coupons: coupons, err: catErr}
	}()
	go func() {
		cents, balErr := q.balanceReads.Balance(ctx)
		balanceCh <- balanceResult{cents: cents, err: balErr}
	}()

	catalog := <-catalogCh
	if catalog.err != nil {
		return nil, errs.Mark(catalog.err, errs.ErrDatabaseOperationFailed)
	}
	if bal := <-balanceCh; bal.err == nil {
		rec.ObserveBalance(bal.cents, seq)
	}
	// A failed balance read degrades the page, it does not fail it.

	st := rec.State()
	balance, known := rec.BalanceCents()
	return &CartView{
		Items:            items,
		State:            st,
		ShippingCents:    q.shippingCents,
		PayableCents:     st.PayableCents(q.shippingCents),
		AvailableCoupons: catalog.coupons,
		BalanceCents:     balance,
		BalanceKnown:     known,
		Notices:          rec.Notices(),
	}, nil
}

func reconcilerStateFromRow(row *shared.DiscountStateRow) discount.State {
	if row == nil {
		return discount.State{}
	}
	st := discount.State{
		SubtotalCents:       row.SubtotalCents,
		PointsRequested:     row.PointsRequested,
		PointsApplied:       row.PointsApplied,
		PointsDiscountCents: row.PointsDiscountCents,
	}
	if row.CouponID != nil || row.CouponFromCode {
		var id int64
		if row.CouponID != nil {
			id = *row.CouponID
		}
		st.Coupon = &discount.AppliedCoupon{
			ID:            id,
			FromCode:      row.CouponFromCode,
			Code:          row.CouponCode,
			Percent:       row.CouponPercent,
			Value:         row.CouponValue,
			MinSpendCents: row.CouponMinSpendCents,
			AmountCents:   row.CouponDiscountCents,
		}
	}
	return st
}
