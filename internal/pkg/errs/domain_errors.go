package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Cart errors
	ErrCartNotFound   = errors.New("cart not found")
	ErrEmptySelection = errors.New("no items selected")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponRejected = errors.New("coupon rejected")

	// Points errors
	ErrInsufficientPoints = errors.New("insufficient points balance")
	ErrRemoteDeduct       = errors.New("points deduct failed")
	ErrRefundFailed       = errors.New("points refund failed")
	ErrPointsRefunded     = errors.New("points refunded after failure")

	// Checkout errors
	ErrDraftNotFound     = errors.New("checkout draft not found")
	ErrDraftExpired      = errors.New("checkout draft expired")
	ErrDraftConsumed     = errors.New("checkout draft already consumed")
	ErrSubmitInFlight    = errors.New("submission already in flight")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderCreateFailed = errors.New("order create failed")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
	ErrDuplicateSubmission    = errors.New("duplicate submission with different parameters")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrNetworkTimeout          = errors.New("remote call timed out")
)
