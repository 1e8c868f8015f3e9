package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/transfer"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// PipelineState tracks one submission attempt through the saga.
type PipelineState string

const (
	StateIdle                PipelineState = "idle"
	StateValidating          PipelineState = "validating"
	StatePointsReserved      PipelineState = "points_reserved"
	StateSubmitting          PipelineState = "submitting"
	StateSucceeded           PipelineState = "succeeded"
	StateFailedCompensated   PipelineState = "failed_compensated"
	StateFailedUncompensated PipelineState = "failed_uncompensated"
)

// RefundFailureError is the one condition the pipeline cannot self-heal:
// points were deducted, order-create failed, and the compensating refund
// also failed. It carries the exact amount for manual reconciliation and
// keeps the primary failure separate instead of swallowing it.
type RefundFailureError struct {
	AmountCents int64
	Primary     error
	RefundErr   error
}

func (e *RefundFailureError) Error() string {
	return fmt.Sprintf("refund of %d failed after order-create failure; manual reconciliation required (primary: %v, refund: %v)",
		e.AmountCents, e.Primary, e.RefundErr)
}

func (e *RefundFailureError) Unwrap() error { return e.RefundErr }

type RedirectURLBuilder interface {
	Build(method order.PaymentMethod, amountCents int64, orderID uuid.UUID, lines []order.DraftLine) (string, error)
}

type OrderReads interface {
	RecordByID(ctx context.Context, orderID uuid.UUID) (*OrderRecord, error)
}

type OrderRecord struct {
	Result        order.Result
	PaymentMethod order.PaymentMethod
	Lines         []order.DraftLine
}

// DeliveryUpdate is one transition of the delivery state machine; only the
// set fields are applied, in a fixed order.
type DeliveryUpdate struct {
	Mode           *string
	SavedAddressID *uuid.UUID
	Manual         *order.ManualAddress
	Pickup         *order.PickupLocation
	Buyer          *order.Buyer
	Recipient      *order.Recipient
	PaymentMethod  *string
	TermsAccepted  *bool
}

type PreviewResult struct {
	Lines         []order.DraftLine
	Coupon        *order.DraftCoupon
	UsedPoints    int64
	Totals        order.Totals
	PaymentMethod order.PaymentMethod
}

type ConfirmResult struct {
	Result      order.Result
	RedirectURL string
	State       PipelineState
	IsReplayed  bool
}

type CheckoutCommands interface {
	UpdateDelivery(ctx context.Context, userID, token uuid.UUID, upd DeliveryUpdate) (*order.DeliveryForm, error)
	Preview(ctx context.Context, userID, token uuid.UUID, member bool) (*PreviewResult, error)
	Confirm(ctx context.Context, userID, token, idempotencyKey uuid.UUID, member bool) (*ConfirmResult, error)
}

type checkoutCommandsImpl struct {
	draftRepo   DraftRepository
	cartReads   CartReads
	cartRepo    CartRepository
	couponReads CouponReads
	addrReads   AddressReads
	stateRepo   DiscountStateRepository
	orderRepo   OrderRepository
	orderReads  OrderReads
	idemRepo    IdempotencyRepository
	ledger      PointsLedger
	redirects   RedirectURLBuilder
	tx          shared.TxRunner
	clock       clock.Clock

	pointValue     int64
	shippingCents  int64
	submitTimeout  time.Duration
	refundAttempts uint64

	// one in-flight confirm per shopper; concurrent attempts are rejected
	// locally, never queued.
	inflight sync.Map
}

func NewCheckoutCommands(
	draftRepo DraftRepository,
	cartReads CartReads,
	cartRepo CartRepository,
	couponReads CouponReads,
	addrReads AddressReads,
	stateRepo DiscountStateRepository,
	orderRepo OrderRepository,
	orderReads OrderReads,
	idemRepo IdempotencyRepository,
	ledger PointsLedger,
	redirects RedirectURLBuilder,
	tx shared.TxRunner,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		draftRepo:      draftRepo,
		cartReads:      cartReads,
		cartRepo:       cartRepo,
		couponReads:    couponReads,
		addrReads:      addrReads,
		stateRepo:      stateRepo,
		orderRepo:      orderRepo,
		orderReads:     orderReads,
		idemRepo:       idemRepo,
		ledger:         ledger,
		redirects:      redirects,
		tx:             tx,
		clock:          clk,
		pointValue:     cfg.Points.PointValueCents,
		shippingCents:  cfg.Checkout.ShippingCents,
		submitTimeout:  cfg.Checkout.SubmitTimeout,
		refundAttempts: uint64(cfg.Points.RefundAttempts),
	}
}

func (c *checkoutCommandsImpl) loadPendingDraft(ctx context.Context, userID, token uuid.UUID) (*shared.DraftRow, error) {
	row, err := c.draftRepo.Get(ctx, token, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDraftNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if row.Status == shared.DraftStatusConsumed {
		return nil, errs.ErrDraftConsumed
	}
	if c.clock.Now().After(row.ExpiresAt) {
		return nil, errs.ErrDraftExpired
	}
	return row, nil
}

func (c *checkoutCommandsImpl) UpdateDelivery(ctx context.Context, userID, token uuid.UUID, upd DeliveryUpdate) (*order.DeliveryForm, error) {
	row, err := c.loadPendingDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	var form order.DeliveryForm
	if err := json.Unmarshal(row.DeliveryForm, &form); err != nil {
		return nil, errs.Wrap(err, "decode delivery form")
	}

	if upd.Mode != nil {
		mode, modeErr := order.NewDeliveryMode(*upd.Mode)
		if modeErr != nil {
			return nil, errs.Mark(modeErr, errs.ErrDomainValidation)
		}
		if err := form.SwitchMode(mode); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if upd.SavedAddressID != nil {
		// The address must belong to the shopper before it can be selected.
		if _, addrErr := c.addrReads.ByID(ctx, userID, *upd.SavedAddressID); addrErr != nil {
			if infra.IsKind(addrErr, infra.KindNotFound) {
				return nil, errs.Mark(order.ErrAddressNotSelected, errs.ErrDomainValidation)
			}
			return nil, errs.Mark(addrErr, errs.ErrDatabaseOperationFailed)
		}
		if err := form.SelectSavedAddress(*upd.SavedAddressID); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if upd.Manual != nil {
		if err := form.EnterManualAddress(*upd.Manual); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if upd.Pickup != nil {
		if err := form.SelectPickup(*upd.Pickup); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if upd.Buyer != nil {
		form.Buyer = *upd.Buyer
	}
	if upd.Recipient != nil {
		form.Recipient = *upd.Recipient
	}
	if upd.PaymentMethod != nil {
		method := order.PaymentMethod(*upd.PaymentMethod)
		if !method.IsValid() {
			return nil, errs.Mark(order.ErrInvalidPaymentMethod, errs.ErrDomainValidation)
		}
		form.PaymentMethod = method
	}
	if upd.TermsAccepted != nil {
		form.TermsAccepted = *upd.TermsAccepted
	}

	raw, err := json.Marshal(form)
	if err != nil {
		return nil, errs.Wrap(err, "encode delivery form")
	}
	if err := c.draftRepo.SaveDeliveryForm(ctx, token, userID, raw); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &form, nil
}

func (c *checkoutCommandsImpl) Preview(ctx context.Context, userID, token uuid.UUID, member bool) (*PreviewResult, error) {
	row, err := c.loadPendingDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	draft, err := c.composeDraft(ctx, userID, row, member)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Lines:         draft.Lines(),
		Coupon:        draft.Coupon(),
		UsedPoints:    draft.UsedPoints(),
		Totals:        draft.Totals(),
		PaymentMethod: draft.PaymentMethod(),
	}, nil
}

// composeDraft merges the transferred discount state with the delivery form
// into an immutable draft. Pure validation and reads; no side effects.
func (c *checkoutCommandsImpl) composeDraft(ctx context.Context, userID uuid.UUID, row *shared.DraftRow, member bool) (*order.Draft, error) {
	payload, err := transfer.Decode(row.Payload)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var form order.DeliveryForm
	if err := json.Unmarshal(row.DeliveryForm, &form); err != nil {
		return nil, errs.Wrap(err, "decode delivery form")
	}

	items, err := c.cartReads.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCartNotFound)
	}
	lines, err := linesForSelection(items, payload.SelectedItemIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var subtotal int64
	for _, l := range lines {
		subtotal += l.TotalCents()
	}

	var draftCoupon *order.DraftCoupon
	var pointsDiscount, usedPoints int64

	if !payload.Reset {
		draftCoupon, err = c.resolveCoupon(ctx, payload, subtotal, member)
		if err != nil {
			return nil, err
		}

		couponDiscount := int64(0)
		if draftCoupon != nil {
			couponDiscount = draftCoupon.DiscountCents
		}
		room := subtotal - couponDiscount
		if room < 0 {
			room = 0
		}
		usedPoints = payload.PointsToUse
		if maxPoints := room / c.pointValue; usedPoints > maxPoints {
			usedPoints = maxPoints
		}
		pointsDiscount = usedPoints * c.pointValue
	}

	shipping, logistics, recipient, err := c.resolveDestination(ctx, userID, &form)
	if err != nil {
		return nil, err
	}
	if form.Recipient.Name == "" && recipient != nil {
		form.Recipient = *recipient
	}

	draft, err := order.NewDraft(order.DraftParams{
		Form:                form,
		ShippingAddress:     shipping,
		Logistics:           logistics,
		Lines:               lines,
		Coupon:              draftCoupon,
		UsedPoints:          usedPoints,
		PointsDiscountCents: pointsDiscount,
		ShippingFeeCents:    c.shippingCents,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return draft, nil
}

// resolveCoupon turns the transferred coupon reference into a numeric
// catalog id. A reference resolved from a typed code is the sentinel case:
// it is re-resolved by code here because order-create rejects non-numeric
// coupon identifiers.
func (c *checkoutCommandsImpl) resolveCoupon(ctx context.Context, payload transfer.Payload, subtotalCents int64, member bool) (*order.DraftCoupon, error) {
	var (
		row *shared.CouponRow
		err error
	)
	switch {
	case payload.CouponFromCode:
		row, err = c.couponReads.ByCode(ctx, payload.CouponCode)
	case payload.CouponID != nil:
		row, err = c.couponReads.ByID(ctx, *payload.CouponID)
	default:
		return nil, nil
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(coupon.Rejected(coupon.ReasonNotFound, payload.CouponCode), errs.ErrCouponRejected)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entry, err := entryFromRow(row)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if rejected := entry.CheckEligibility(subtotalCents, member, c.clock.Now()); rejected != nil {
		return nil, errs.Mark(rejected, errs.ErrCouponRejected)
	}

	return &order.DraftCoupon{
		ID:            entry.ID(),
		Code:          entry.Code().String(),
		DiscountCents: entry.AmountCents(subtotalCents),
	}, nil
}

func (c *checkoutCommandsImpl) resolveDestination(ctx context.Context, userID uuid.UUID, form *order.DeliveryForm) (order.ShippingAddress, *order.Logistics, *order.Recipient, error) {
	switch form.Mode {
	case order.ModeHomeSaved:
		if form.SavedAddressID == nil {
			return order.ShippingAddress{}, nil, nil, errs.Mark(order.ErrAddressNotSelected, errs.ErrDomainValidation)
		}
		addr, err := c.addrReads.ByID(ctx, userID, *form.SavedAddressID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return order.ShippingAddress{}, nil, nil, errs.Mark(order.ErrAddressNotSelected, errs.ErrDomainValidation)
			}
			return order.ShippingAddress{}, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return order.ShippingAddress{
			Zipcode:  addr.Zipcode,
			City:     addr.City,
			District: addr.District,
			Street:   addr.Address,
		}, nil, &order.Recipient{Name: addr.RecipientName, Phone: addr.RecipientPhone}, nil

	case order.ModeHomeManual:
		if form.Manual == nil {
			return order.ShippingAddress{}, nil, nil, errs.Mark(order.ErrManualAddressIncomplete, errs.ErrDomainValidation)
		}
		return order.ShippingAddress{
			Zipcode:  form.Manual.Zipcode,
			City:     form.Manual.City,
			District: form.Manual.District,
			Street:   form.Manual.Street,
		}, nil, nil, nil

	case order.ModeLockerPickup:
		if form.Pickup == nil {
			return order.ShippingAddress{}, nil, nil, errs.Mark(order.ErrPickupIncomplete, errs.ErrDomainValidation)
		}
		return order.ShippingAddress{Street: form.Pickup.Address},
			&order.Logistics{PickupLocationID: form.Pickup.LocationID}, nil, nil

	default:
		return order.ShippingAddress{}, nil, nil, errs.Mark(order.ErrInvalidDeliveryMode, errs.ErrDomainValidation)
	}
}

// Confirm runs the submission saga:
// Validating -> (PointsReserved) -> Submitting -> terminal state.
// Exactly one order-create per confirmed attempt; a failed create after a
// successful deduct is compensated by a bounded-retry refund.
func (c *checkoutCommandsImpl) Confirm(ctx context.Context, userID, token, idempotencyKey uuid.UUID, member bool) (*ConfirmResult, error) {
	if _, loaded := c.inflight.LoadOrStore(userID, struct{}{}); loaded {
		return nil, errs.ErrSubmitInFlight
	}
	defer c.inflight.Delete(userID)

	requestHash := confirmRequestHash(userID, token)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	// Validating: everything before the first remote effect.
	row, err := c.loadPendingDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	draft, err := c.composeDraft(ctx, userID, row, member)
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, userID, token, idempotencyKey, draft)
}

func (c *checkoutCommandsImpl) handleIdempotency(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (*ConfirmResult, error) {
	inserted, err := c.idemRepo.TryInsert(ctx, key, userID, "POST /checkout/confirm", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		// Fresh key; this caller owns the submission.
		return nil, nil
	}

	existing, err := c.idemRepo.Get(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrDuplicateSubmission
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.New("completed submission missing result order id")
		}
		record, err := c.orderReads.RecordByID(ctx, *existing.ResultOrderID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		url, err := c.redirects.Build(record.PaymentMethod, record.Result.TotalCents, record.Result.OrderID, record.Lines)
		if err != nil {
			return nil, errs.Wrap(err, "rebuild redirect url")
		}
		return &ConfirmResult{
			Result:      record.Result,
			RedirectURL: url,
			State:       StateSucceeded,
			IsReplayed:  true,
		}, nil

	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *checkoutCommandsImpl) execute(ctx context.Context, userID, token, idempotencyKey uuid.UUID, draft *order.Draft) (*ConfirmResult, error) {
	pointsReserved := false
	usedPoints := draft.UsedPoints()
	pointsAmount := usedPoints * c.pointValue

	// PointsReserved is entered only when points are actually in play.
	if usedPoints > 0 {
		deductCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
		err := c.ledger.Deduct(deductCtx, pointsAmount, "checkout", idempotencyKey)
		cancel()
		if err != nil {
			// Reservation failure aborts with zero side effects.
			return nil, err
		}
		pointsReserved = true
	}

	// Submitting: exactly one order-create call.
	submitCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	var result order.Result
	err := c.tx.WithinTx(submitCtx, func(tx db.DBTX) error {
		if err := c.draftRepo.Consume(submitCtx, tx, token, userID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrDraftConsumed
			}
			return err
		}

		res, err := c.orderRepo.Create(submitCtx, tx, userID, draft)
		if err != nil {
			return err
		}

		if coup := draft.Coupon(); coup != nil {
			if err := c.orderRepo.IncrementCouponUsage(submitCtx, tx, coup.ID); err != nil {
				return err
			}
		}

		purchased := make([]uuid.UUID, 0, len(draft.Lines()))
		for _, l := range draft.Lines() {
			purchased = append(purchased, l.ItemID)
		}
		if err := c.cartRepo.RemoveItems(submitCtx, tx, userID, purchased); err != nil {
			return err
		}

		if err := c.idemRepo.UpdateStatusCompleted(submitCtx, tx, idempotencyKey, userID, res.OrderID); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, c.compensate(ctx, pointsReserved, pointsAmount, err)
	}

	// Discount state is consumed by a successful submission.
	if clearErr := c.stateRepo.Clear(ctx, userID); clearErr != nil {
		slog.Warn("failed to clear discount state after submission", "error", clearErr)
	}

	url, err := c.redirects.Build(draft.PaymentMethod(), result.TotalCents, result.OrderID, draft.Lines())
	if err != nil {
		return nil, errs.Wrap(err, "build redirect url")
	}

	return &ConfirmResult{Result: result, RedirectURL: url, State: StateSucceeded}, nil
}

// compensate refunds a reserved deduct after a failed order-create. The
// retry is bounded; exhausting it is the FailedUncompensated terminal state.
func (c *checkoutCommandsImpl) compensate(ctx context.Context, pointsReserved bool, amountCents int64, primary error) error {
	if !pointsReserved {
		return errs.Mark(primary, errs.ErrOrderCreateFailed)
	}

	backoff := retry.WithMaxRetries(c.refundAttempts, retry.NewExponential(250*time.Millisecond))
	refundKey := uuid.New()
	refundErr := retry.Do(ctx, backoff, func(ctx context.Context) error {
		refundCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
		defer cancel()
		if err := c.ledger.Refund(refundCtx, amountCents, "rollback", refundKey); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if refundErr != nil {
		slog.Error("points refund failed after order-create failure",
			"amount_cents", amountCents, "primary_error", primary, "refund_error", refundErr)
		return errs.Mark(&RefundFailureError{
			AmountCents: amountCents,
			Primary:     primary,
			RefundErr:   refundErr,
		}, errs.ErrRefundFailed)
	}

	// ErrPointsRefunded tells the handler the deduct was rolled back, so the
	// response can say so; a failure with no deduct stays a plain create failure.
	return errs.Mark(errs.Mark(primary, errs.ErrPointsRefunded), errs.ErrOrderCreateFailed)
}

func confirmRequestHash(userID, token uuid.UUID) string {
	sum := sha256.Sum256([]byte(userID.String() + ":" + token.String()))
	return hex.EncodeToString(sum[:])
}

func emptyDeliveryForm() ([]byte, error) {
	form := order.NewDeliveryForm()
	return json.Marshal(form)
}

func linesForSelection(items []shared.CartItemRow, selected []uuid.UUID) ([]order.DraftLine, error) {
	byID := make(map[uuid.UUID]shared.CartItemRow, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	lines := make([]order.DraftLine, 0, len(selected))
	for _, id := range selected {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("selected item %s no longer in cart", id)
		}
		lines = append(lines, order.DraftLine{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		})
	}
	if len(lines) == 0 {
		return nil, errs.ErrEmptySelection
	}
	return lines, nil
}
