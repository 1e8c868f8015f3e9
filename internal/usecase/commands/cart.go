package commands

import (
	"context"
	"time"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/domain/transfer"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartState is what every cart mutation hands back: the post-mutation
// discount state plus the notices the shopper must see.
type CartState struct {
	Items        []shared.CartItemRow
	State        discount.State
	BalanceCents int64
	BalanceKnown bool
	Notices      []discount.Notice
}

type TransferResult struct {
	Token     uuid.UUID
	Payload   []byte
	ExpiresAt time.Time
}

type CartCommands interface {
	UpdateSelection(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) (*CartState, error)
	ApplyCouponByCode(ctx context.Context, userID uuid.UUID, code string, member bool) (*CartState, error)
	ApplyCouponByID(ctx context.Context, userID uuid.UUID, couponID int64, member bool) (*CartState, error)
	RemoveCoupon(ctx context.Context, userID uuid.UUID) (*CartState, error)
	StagePoints(ctx context.Context, userID uuid.UUID, points int64) (*CartState, error)
	ApplyPoints(ctx context.Context, userID uuid.UUID) (*CartState, error)
	CreateTransfer(ctx context.Context, userID uuid.UUID, reset bool) (*TransferResult, error)
}

type cartCommandsImpl struct {
	cartReads    CartReads
	cartRepo     CartRepository
	couponReads  CouponReads
	stateRepo    DiscountStateRepository
	draftRepo    DraftRepository
	ledger       PointsLedger
	clock        clock.Clock
	pointValue   int64
	draftTTL     time.Duration
}

func NewCartCommands(
	cartReads CartReads,
	cartRepo CartRepository,
	couponReads CouponReads,
	stateRepo DiscountStateRepository,
	draftRepo DraftRepository,
	ledger PointsLedger,
	clk clock.Clock,
	cfg config.Config,
) CartCommands {
	return &cartCommandsImpl{
		cartReads:   cartReads,
		cartRepo:    cartRepo,
		couponReads: couponReads,
		stateRepo:   stateRepo,
		draftRepo:   draftRepo,
		ledger:      ledger,
		clock:       clk,
		pointValue:  cfg.Points.PointValueCents,
		draftTTL:    cfg.Checkout.DraftTTL,
	}
}

// loadReconciler rehydrates the shopper's reconciler against the live cart
// subtotal, so every operation starts from re-clamped, invariant-safe state.
func (c *cartCommandsImpl) loadReconciler(ctx context.Context, userID uuid.UUID) (*discount.Reconciler, []shared.CartItemRow, error) {
	items, err := c.cartReads.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrCartNotFound)
	}

	snap, err := snapshotFromRows(items)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	subtotal := snap.SubtotalCents()

	row, err := c.stateRepo.Get(ctx, userID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rec, err := discount.Rehydrate(stateFromRow(row), subtotal, c.pointValue)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return rec, items, nil
}

func (c *cartCommandsImpl) persist(ctx context.Context, userID uuid.UUID, rec *discount.Reconciler, items []shared.CartItemRow) (*CartState, error) {
	st := rec.State()
	if err := c.stateRepo.Save(ctx, rowFromState(userID, st)); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	balance, known := rec.BalanceCents()
	return &CartState{
		Items:        items,
		State:        st,
		BalanceCents: balance,
		BalanceKnown: known,
		Notices:      rec.Notices(),
	}, nil
}

func (c *cartCommandsImpl) UpdateSelection(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) (*CartState, error) {
	if err := c.cartRepo.UpdateSelection(ctx, userID, selectedIDs); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Rehydrate already re-clamped against the new subtotal; persisting here
	// stores the reconciled state and surfaces any coupon_cleared notice.
	return c.persist(ctx, userID, rec, items)
}

func (c *cartCommandsImpl) ApplyCouponByCode(ctx context.Context, userID uuid.UUID, rawCode string, member bool) (*CartState, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(coupon.Rejected(coupon.ReasonNotFound, rawCode), errs.ErrCouponRejected)
	}

	row, err := c.couponReads.ByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(coupon.Rejected(coupon.ReasonNotFound, code.String()), errs.ErrCouponRejected)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.applyCoupon(ctx, userID, row, true, member)
}

func (c *cartCommandsImpl) ApplyCouponByID(ctx context.Context, userID uuid.UUID, couponID int64, member bool) (*CartState, error) {
	row, err := c.couponReads.ByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(coupon.Rejected(coupon.ReasonNotFound, ""), errs.ErrCouponRejected)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.applyCoupon(ctx, userID, row, false, member)
}

func (c *cartCommandsImpl) applyCoupon(ctx context.Context, userID uuid.UUID, row *shared.CouponRow, fromCode, member bool) (*CartState, error) {
	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := entryFromRow(row)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if rejected := entry.CheckEligibility(rec.State().SubtotalCents, member, c.clock.Now()); rejected != nil {
		return nil, errs.Mark(rejected, errs.ErrCouponRejected)
	}

	rec.ApplyCoupon(appliedFromRow(row, fromCode))
	return c.persist(ctx, userID, rec, items)
}

func (c *cartCommandsImpl) RemoveCoupon(ctx context.Context, userID uuid.UUID) (*CartState, error) {
	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.RemoveCoupon()
	return c.persist(ctx, userID, rec, items)
}

func (c *cartCommandsImpl) StagePoints(ctx context.Context, userID uuid.UUID, points int64) (*CartState, error) {
	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Staging is local, but it clamps tighter when a fresh balance is around.
	seq := rec.IssueReadSeq()
	if balance, balErr := c.ledger.Balance(ctx); balErr == nil {
		rec.ObserveBalance(balance, seq)
	}

	if err := rec.SetPointsRequested(points); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c.persist(ctx, userID, rec, items)
}

func (c *cartCommandsImpl) ApplyPoints(ctx context.Context, userID uuid.UUID) (*CartState, error) {
	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}

	seq := rec.IssueReadSeq()
	balance, err := c.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}
	rec.ObserveBalance(balance, seq)

	if err := rec.ApplyPoints(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c.persist(ctx, userID, rec, items)
}

// CreateTransfer snapshots the selection + discount state into a short-lived
// server-side draft and hands back the opaque token the checkout page uses.
func (c *cartCommandsImpl) CreateTransfer(ctx context.Context, userID uuid.UUID, reset bool) (*TransferResult, error) {
	rec, items, err := c.loadReconciler(ctx, userID)
	if err != nil {
		return nil, err
	}

	st := rec.State()
	var selected []uuid.UUID
	for _, it := range items {
		if it.Selected {
			selected = append(selected, it.ID)
		}
	}
	if len(selected) == 0 {
		return nil, errs.ErrEmptySelection
	}

	payload := transfer.Payload{
		SelectedItemIDs:      selected,
		PointsToUse:          st.PointsApplied,
		PointsDiscountCents:  st.PointsDiscountCents,
		SummarySubtotalCents: st.SubtotalCents,
		Reset:                reset,
	}
	if coup := st.Coupon; coup != nil {
		if !coup.FromCode {
			id := coup.ID
			payload.CouponID = &id
		}
		payload.CouponFromCode = coup.FromCode
		payload.CouponCode = coup.Code
		payload.CouponPercent = coup.Percent
		payload.CouponValue = coup.Value
		payload.CouponMinSpendCents = coup.MinSpendCents
		payload.CouponDiscountCents = coup.AmountCents
	}

	raw, err := transfer.Encode(payload)
	if err != nil {
		return nil, errs.Wrap(err, "encode transfer payload")
	}

	form, err := emptyDeliveryForm()
	if err != nil {
		return nil, errs.Wrap(err, "encode delivery form")
	}

	now := c.clock.Now()
	row := shared.DraftRow{
		Token:        uuid.New(),
		UserID:       userID,
		Payload:      raw,
		DeliveryForm: form,
		Status:       shared.DraftStatusPending,
		ExpiresAt:    now.Add(c.draftTTL),
		CreatedAt:    now,
	}
	if err := c.draftRepo.Create(ctx, row); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &TransferResult{Token: row.Token, Payload: raw, ExpiresAt: row.ExpiresAt}, nil
}

func entryFromRow(row *shared.CouponRow) (*coupon.Entry, error) {
	return coupon.NewEntry(
		row.ID,
		row.Code,
		row.DiscountType,
		row.Value,
		row.MinSpendCents,
		row.UsageLimit,
		row.UsedCount,
		coupon.TargetType(row.TargetType),
		row.IsValid,
		coupon.Status(row.Status),
		row.ValidFrom,
		row.ValidTo,
	)
}
