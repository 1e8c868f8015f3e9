//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/transfer"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/shared"
	commandsmock "storefront-checkout/tests/mock/commands"
	sharedmock "storefront-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	draftRepo   *commandsmock.MockDraftRepository
	cartReads   *commandsmock.MockCartReads
	cartRepo    *commandsmock.MockCartRepository
	couponReads *commandsmock.MockCouponReads
	addrReads   *commandsmock.MockAddressReads
	stateRepo   *commandsmock.MockDiscountStateRepository
	orderRepo   *commandsmock.MockOrderRepository
	orderReads  *commandsmock.MockOrderReads
	idemRepo    *commandsmock.MockIdempotencyRepository
	ledger      *commandsmock.MockPointsLedger
	redirects   *commandsmock.MockRedirectURLBuilder
	tx          *sharedmock.MockTxRunner
	clock       *clock.MockClock
	sut         commands.CheckoutCommands
}

var fixedNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newCheckoutFixture(t *testing.T, mutateCfg func(*config.Config)) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.NewTestConfig()
	if mutateCfg != nil {
		mutateCfg(&cfg)
	}

	f := &checkoutFixture{
		draftRepo:   commandsmock.NewMockDraftRepository(ctrl),
		cartReads:   commandsmock.NewMockCartReads(ctrl),
		cartRepo:    commandsmock.NewMockCartRepository(ctrl),
		couponReads: commandsmock.NewMockCouponReads(ctrl),
		addrReads:   commandsmock.NewMockAddressReads(ctrl),
		stateRepo:   commandsmock.NewMockDiscountStateRepository(ctrl),
		orderRepo:   commandsmock.NewMockOrderRepository(ctrl),
		orderReads:  commandsmock.NewMockOrderReads(ctrl),
		idemRepo:    commandsmock.NewMockIdempotencyRepository(ctrl),
		ledger:      commandsmock.NewMockPointsLedger(ctrl),
		redirects:   commandsmock.NewMockRedirectURLBuilder(ctrl),
		tx:          sharedmock.NewMockTxRunner(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}
	f.sut = commands.NewCheckoutCommands(
		f.draftRepo, f.cartReads, f.cartRepo, f.couponReads, f.addrReads,
		f.stateRepo, f.orderRepo, f.orderReads, f.idemRepo, f.ledger,
		f.redirects, f.tx, f.clock, cfg,
	)
	return f
}

// runTx makes the transaction boundary transparent: the callback runs
// immediately against a nil handle the mocks ignore.
func (f *checkoutFixture) runTx() {
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		})
}

func pendingDraftRow(t *testing.T, userID, token, itemID uuid.UUID, pointsToUse int64) *shared.DraftRow {
	t.Helper()

	payload, err := transfer.Encode(transfer.Payload{
		SelectedItemIDs:     []uuid.UUID{itemID},
		PointsToUse:         pointsToUse,
		PointsDiscountCents: pointsToUse,
	})
	require.NoError(t, err)

	form := order.NewDeliveryForm()
	require.NoError(t, form.EnterManualAddress(order.ManualAddress{
		Zipcode: "100", City: "Taipei", District: "Zhongzheng", Street: "1 Ketagalan Blvd",
	}))
	form.Buyer = order.Buyer{Name: "Ada Lovelace", Phone: "0912345678", Email: "ada@example.com"}
	form.PaymentMethod = order.PaymentEpay
	form.TermsAccepted = true
	rawForm, err := json.Marshal(form)
	require.NoError(t, err)

	return &shared.DraftRow{
		Token:        token,
		UserID:       userID,
		Payload:      payload,
		DeliveryForm: rawForm,
		Status:       shared.DraftStatusPending,
		ExpiresAt:    fixedNow.Add(30 * time.Minute),
	}
}

func cartItemRow(itemID uuid.UUID) shared.CartItemRow {
	return shared.CartItemRow{
		ID: itemID, Name: "Mechanical Keyboard", UnitPriceCents: 10000, Quantity: 1, Selected: true,
	}
}

func TestConfirm_Success(t *testing.T) {
	t.Run("without points", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		orderID := uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, "POST /checkout/confirm", gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
		f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
			Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

		f.runTx()
		f.draftRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), token, userID).Return(nil)
		f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userID, gomock.Any()).
			Return(order.Result{OrderID: orderID, OrderNumber: "ORD-1", TotalCents: 10350, Status: order.StatusPending}, nil)
		f.cartRepo.EXPECT().RemoveItems(gomock.Any(), gomock.Any(), userID, []uuid.UUID{itemID}).Return(nil)
		f.idemRepo.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, userID, orderID).Return(nil)

		f.stateRepo.EXPECT().Clear(gomock.Any(), userID).Return(nil)
		f.redirects.EXPECT().Build(order.PaymentEpay, int64(10350), orderID, gomock.Any()).
			Return("https://pay.example.com/epay?order=1", nil)

		res, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		require.NoError(t, err)
		assert.Equal(t, commands.StateSucceeded, res.State)
		assert.False(t, res.IsReplayed)
		assert.Equal(t, orderID, res.Result.OrderID)
		assert.Equal(t, "https://pay.example.com/epay?order=1", res.RedirectURL)
	})

	t.Run("with points deducts exactly once", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		orderID := uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 500), nil)
		f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
			Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

		f.ledger.EXPECT().Deduct(gomock.Any(), int64(500), "checkout", key).Return(nil).Times(1)

		f.runTx()
		f.draftRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), token, userID).Return(nil)
		f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, draft *order.Draft) (order.Result, error) {
				assert.Equal(t, int64(500), draft.UsedPoints())
				assert.Equal(t, int64(10000-500+350), draft.Totals().PayableCents)
				return order.Result{OrderID: orderID, TotalCents: draft.Totals().PayableCents, Status: order.StatusPending}, nil
			})
		f.cartRepo.EXPECT().RemoveItems(gomock.Any(), gomock.Any(), userID, gomock.Any()).Return(nil)
		f.idemRepo.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, userID, orderID).Return(nil)

		f.stateRepo.EXPECT().Clear(gomock.Any(), userID).Return(nil)
		f.redirects.EXPECT().Build(order.PaymentEpay, int64(9850), orderID, gomock.Any()).Return("https://pay.example.com/epay", nil)

		res, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		require.NoError(t, err)
		assert.Equal(t, commands.StateSucceeded, res.State)
	})
}

func TestConfirm_DeductFailureHasNoSideEffects(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
		Return(pendingDraftRow(t, userID, token, itemID, 500), nil)
	f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
		Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

	f.ledger.EXPECT().Deduct(gomock.Any(), int64(500), "checkout", key).
		Return(errs.ErrInsufficientPoints)
	// no Consume, no Create, no Refund

	_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
	assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
}

func TestConfirm_FailedCreateIsCompensated(t *testing.T) {
	f := newCheckoutFixture(t, func(cfg *config.Config) { cfg.Points.RefundAttempts = 1 })
	userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
		Return(pendingDraftRow(t, userID, token, itemID, 500), nil)
	f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
		Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

	f.ledger.EXPECT().Deduct(gomock.Any(), int64(500), "checkout", key).Return(nil)

	f.runTx()
	f.draftRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), token, userID).Return(nil)
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userID, gomock.Any()).
		Return(order.Result{}, errors.New("insert failed"))

	// the deducted amount is refunded exactly once when the refund succeeds
	f.ledger.EXPECT().Refund(gomock.Any(), int64(500), "rollback", gomock.Any()).Return(nil).Times(1)

	_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
	assert.ErrorIs(t, err, errs.ErrOrderCreateFailed)
	assert.ErrorIs(t, err, errs.ErrPointsRefunded, "a rolled-back deduct must be visible to the handler")
}

func TestConfirm_RefundExhaustionSurfacesAmount(t *testing.T) {
	f := newCheckoutFixture(t, func(cfg *config.Config) { cfg.Points.RefundAttempts = 1 })
	userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
		Return(pendingDraftRow(t, userID, token, itemID, 500), nil)
	f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
		Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

	f.ledger.EXPECT().Deduct(gomock.Any(), int64(500), "checkout", key).Return(nil)

	f.runTx()
	f.draftRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), token, userID).Return(nil)
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userID, gomock.Any()).
		Return(order.Result{}, errors.New("insert failed"))

	f.ledger.EXPECT().Refund(gomock.Any(), int64(500), "rollback", gomock.Any()).
		Return(errors.New("ledger down")).Times(2)

	_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
	require.ErrorIs(t, err, errs.ErrRefundFailed)

	var rf *commands.RefundFailureError
	require.ErrorAs(t, err, &rf)
	assert.Equal(t, int64(500), rf.AmountCents)
	assert.ErrorContains(t, rf.Primary, "insert failed")
}

func TestConfirm_ConsumedDraftAborts(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
		Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
	f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
		Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

	f.runTx()
	f.draftRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), token, userID).
		Return(infra.WrapRepoErr("draft already consumed", nil, infra.KindConflict))
	// the conflict aborts before any order-create

	_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
	assert.ErrorIs(t, err, errs.ErrOrderCreateFailed)
	assert.NotErrorIs(t, err, errs.ErrPointsRefunded, "nothing was deducted, so nothing was refunded")
}

func TestConfirm_Idempotency(t *testing.T) {
	t.Run("completed key replays the stored order", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key := uuid.New(), uuid.New(), uuid.New()
		orderID := uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.idemRepo.EXPECT().Get(gomock.Any(), key, userID).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:           key,
					UserID:        userID,
					Status:        shared.IdempotencyStatusCompleted,
					RequestHash:   confirmHashForTest(userID, token),
					ResultOrderID: &orderID,
				}, nil
			})
		f.orderReads.EXPECT().RecordByID(gomock.Any(), orderID).
			Return(&commands.OrderRecord{
				Result:        order.Result{OrderID: orderID, TotalCents: 10350, Status: order.StatusPending},
				PaymentMethod: order.PaymentEpay,
			}, nil)
		f.redirects.EXPECT().Build(order.PaymentEpay, int64(10350), orderID, gomock.Any()).
			Return("https://pay.example.com/epay?order=1", nil)

		res, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		require.NoError(t, err)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, commands.StateSucceeded, res.State)
		assert.Equal(t, orderID, res.Result.OrderID)
	})

	t.Run("processing key is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key := uuid.New(), uuid.New(), uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.idemRepo.EXPECT().Get(gomock.Any(), key, userID).
			Return(&shared.IdempotencyRecord{
				Status:      shared.IdempotencyStatusProcessing,
				RequestHash: confirmHashForTest(userID, token),
			}, nil)

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrIdempotencyInProgress)
	})

	t.Run("same key with a different request is a duplicate", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key := uuid.New(), uuid.New(), uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.idemRepo.EXPECT().Get(gomock.Any(), key, userID).
			Return(&shared.IdempotencyRecord{
				Status:      shared.IdempotencyStatusProcessing,
				RequestHash: "some-other-request",
			}, nil)

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrDuplicateSubmission)
	})
}

func TestConfirm_SecondAttemptWhileInFlight(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	userID, token := uuid.New(), uuid.New()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.idemRepo.EXPECT().TryInsert(gomock.Any(), gomock.Any(), userID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID, string, string, time.Time) (bool, error) {
			close(entered)
			<-release
			return false, errors.New("db gone")
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.sut.Confirm(context.Background(), userID, token, uuid.New(), false)
		assert.ErrorIs(t, err, errs.ErrIdempotencyCheckFailed)
	}()

	<-entered
	_, err := f.sut.Confirm(context.Background(), userID, token, uuid.New(), false)
	assert.ErrorIs(t, err, errs.ErrSubmitInFlight)

	close(release)
	wg.Wait()
}

func TestConfirm_DraftGates(t *testing.T) {
	t.Run("missing draft", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key := uuid.New(), uuid.New(), uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(nil, infra.WrapRepoErr("draft not found", nil, infra.KindNotFound))

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrDraftNotFound)
	})

	t.Run("expired draft", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

		row := pendingDraftRow(t, userID, token, itemID, 0)
		row.ExpiresAt = fixedNow.Add(-time.Minute)
		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).Return(row, nil)

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrDraftExpired)
	})

	t.Run("already consumed draft", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

		row := pendingDraftRow(t, userID, token, itemID, 0)
		row.Status = shared.DraftStatusConsumed
		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).Return(row, nil)

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrDraftConsumed)
	})

	t.Run("selected item gone from cart", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, key, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

		f.idemRepo.EXPECT().TryInsert(gomock.Any(), key, userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
		f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
			Return([]shared.CartItemRow{cartItemRow(uuid.New())}, nil)

		_, err := f.sut.Confirm(context.Background(), userID, token, key, false)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUpdateDelivery(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("switching to pickup blanks the manual address", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
		f.draftRepo.EXPECT().SaveDeliveryForm(gomock.Any(), token, userID, gomock.Any()).Return(nil)

		form, err := f.sut.UpdateDelivery(context.Background(), userID, token, commands.DeliveryUpdate{
			Mode:   strPtr(string(order.ModeLockerPickup)),
			Pickup: &order.PickupLocation{LocationID: "LKR-042", Address: "7-11 Guting Store"},
		})
		require.NoError(t, err)
		assert.Equal(t, order.ModeLockerPickup, form.Mode)
		assert.Nil(t, form.Manual)
		require.NotNil(t, form.Pickup)
	})

	t.Run("foreign saved address is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()
		addrID := uuid.New()

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
		f.addrReads.EXPECT().ByID(gomock.Any(), userID, addrID).
			Return(nil, infra.WrapRepoErr("address not found", nil, infra.KindNotFound))

		_, err := f.sut.UpdateDelivery(context.Background(), userID, token, commands.DeliveryUpdate{
			SavedAddressID: &addrID,
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("invalid payment method is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)

		_, err := f.sut.UpdateDelivery(context.Background(), userID, token, commands.DeliveryUpdate{
			PaymentMethod: strPtr("cash"),
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("terms acceptance is persisted", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 0), nil)
		f.draftRepo.EXPECT().SaveDeliveryForm(gomock.Any(), token, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, raw []byte) error {
				var saved order.DeliveryForm
				require.NoError(t, json.Unmarshal(raw, &saved))
				assert.False(t, saved.TermsAccepted)
				return nil
			})

		form, err := f.sut.UpdateDelivery(context.Background(), userID, token, commands.DeliveryUpdate{
			TermsAccepted: boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, form.TermsAccepted)
	})
}

func TestPreview(t *testing.T) {
	t.Run("composes totals without side effects", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).
			Return(pendingDraftRow(t, userID, token, itemID, 200), nil)
		f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
			Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)
		// no ledger, repository, or idempotency calls

		res, err := f.sut.Preview(context.Background(), userID, token, false)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), res.Totals.SubtotalCents)
		assert.Equal(t, int64(200), res.UsedPoints)
		assert.Equal(t, int64(10000-200+350), res.Totals.PayableCents)
		assert.Equal(t, order.PaymentEpay, res.PaymentMethod)
	})

	t.Run("reset payload previews without discounts", func(t *testing.T) {
		f := newCheckoutFixture(t, nil)
		userID, token, itemID := uuid.New(), uuid.New(), uuid.New()

		row := pendingDraftRow(t, userID, token, itemID, 500)
		payload, err := transfer.Encode(transfer.Payload{
			SelectedItemIDs: []uuid.UUID{itemID},
			PointsToUse:     500,
			Reset:           true,
		})
		require.NoError(t, err)
		row.Payload = payload

		f.draftRepo.EXPECT().Get(gomock.Any(), token, userID).Return(row, nil)
		f.cartReads.EXPECT().ItemsByUser(gomock.Any(), userID).
			Return([]shared.CartItemRow{cartItemRow(itemID)}, nil)

		res, err := f.sut.Preview(context.Background(), userID, token, false)
		require.NoError(t, err)
		assert.Zero(t, res.UsedPoints)
		assert.Nil(t, res.Coupon)
		assert.Equal(t, int64(10350), res.Totals.PayableCents)
	})
}

// confirmHashForTest mirrors the request hash the pipeline derives for
// POST /checkout/confirm.
func confirmHashForTest(userID, token uuid.UUID) string {
	sum := sha256.Sum256([]byte(userID.String() + ":" + token.String()))
	return hex.EncodeToString(sum[:])
}
