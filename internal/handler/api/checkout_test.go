//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"
	commandsmock "storefront-checkout/tests/mock/commands"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockQueries, s.mockCommands)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("member", true)
		c.Next()
	}

	// Setup routes
	s.router.GET("/checkout", authMiddleware, s.handler.GetPage)
	s.router.PUT("/checkout/delivery", authMiddleware, s.handler.UpdateDelivery)
	s.router.POST("/checkout/preview", authMiddleware, s.handler.Preview)
	s.router.POST("/checkout/confirm", authMiddleware, s.handler.Confirm)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func idempotencyHeader(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// ================================================================================
// TestGetPage
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestGetPage() {
	co := builder.NewCheckoutBuilder()
	page := co.BuildPage()
	url := "/checkout?token=" + co.Token.String()

	s.Run("success: returns 200 OK with the full checkout page", func() {
		s.mockQueries.EXPECT().PageByToken(gomock.Any(), s.userID, co.Token).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CheckoutPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(co.Token, response.Token)
		s.Require().Len(response.Lines, 1)
		s.Equal(co.ItemID, response.Lines[0].ItemID)
		s.Equal(int64(10000), response.Summary.SubtotalCents)
		s.Equal(int64(1000), response.Summary.CouponDiscountCents)
		s.Equal(int64(200), response.UsedPoints)
		s.Equal(int64(9150), response.Summary.PayableCents)
		s.Equal("home-manual-entry", response.DeliveryForm.Mode)
		s.Len(response.Addresses, 1)
		s.Require().NotNil(response.BalanceCents)
		s.Equal(int64(1500), *response.BalanceCents)
	})

	s.Run("error: 400 Bad Request for a malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout?token=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid transfer token")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps draft errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft not found",
				queriesError:   errs.ErrDraftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "draft expired",
				queriesError:   errs.ErrDraftExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "draft already submitted",
				queriesError:   errs.ErrDraftConsumed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already submitted",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().PageByToken(gomock.Any(), s.userID, co.Token).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateDelivery
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestUpdateDelivery() {
	url := "/checkout/delivery"

	co := builder.NewCheckoutBuilder()
	reqBody := co.BuildUpdateDeliveryRequestDTO()
	form := co.BuildDeliveryForm()

	s.Run("success: returns 200 OK with the saved form", func() {
		s.mockCommands.EXPECT().UpdateDelivery(gomock.Any(), s.userID, co.Token, gomock.Any()).
			Return(&form, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.DeliveryFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("home-manual-entry", response.Mode)
		s.Require().NotNil(response.Manual)
		s.Equal("100-0001", response.Manual.Zipcode)
		s.Equal("Ada Lovelace", response.Buyer.Name)
		s.True(response.TermsAccepted)
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("token", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown payment method",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "draft expired",
				commandsError:  errs.ErrDraftExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateDelivery(gomock.Any(), s.userID, co.Token, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestPreview() {
	url := "/checkout/preview"

	co := builder.NewCheckoutBuilder()
	result := co.BuildPreviewResult()
	reqBody := map[string]any{"token": co.Token.String()}

	s.Run("success: returns 200 OK with the composed totals", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), s.userID, co.Token, true).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Lines, 1)
		s.Require().NotNil(response.Coupon)
		s.Equal(int64(1000), response.Coupon.DiscountCents)
		s.Equal(int64(200), response.UsedPoints)
		s.Equal(int64(10000), response.Summary.SubtotalCents)
		s.Equal(int64(1000), response.Summary.CouponDiscountCents)
		s.Equal(int64(200), response.Summary.PointsDiscountCents)
		s.Equal(int64(9150), response.Summary.PayableCents)
		s.Equal("epay", response.PaymentMethod)
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 when the delivery form is incomplete", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), s.userID, co.Token, true).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("error: 410 Gone for an expired draft", func() {
		s.mockCommands.EXPECT().Preview(gomock.Any(), s.userID, co.Token, true).
			Return(nil, errs.ErrDraftExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "expired")
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestConfirm() {
	url := "/checkout/confirm"

	co := builder.NewCheckoutBuilder()
	orderID := uuid.New()
	idemKey := uuid.New()
	result := co.BuildConfirmResult(orderID)
	reqBody := map[string]any{"token": co.Token.String()}

	s.Run("success: returns 201 Created on first submission", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, co.Token, idemKey, true).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(idemKey))

		var response resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(orderID, response.OrderID)
		s.Equal("ORD-20260830-0001", response.OrderNumber)
		s.Equal(int64(9150), response.TotalCents)
		s.Equal("pending", response.Status)
		s.Contains(response.RedirectURL, orderID.String())
	})

	s.Run("success: returns 200 OK when the key replays a completed order", func() {
		replayed := co.BuildConfirmResult(orderID)
		replayed.IsReplayed = true
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, co.Token, idemKey, true).
			Return(replayed, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(idemKey))

		var response resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.OrderID)
	})

	s.Run("error: 400 Bad Request without an Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key required")
	})

	s.Run("error: 400 Bad Request for a malformed Idempotency-Key", func() {
		headers := map[string]string{"Idempotency-Key": "not-a-uuid"}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 500 with the refund amount when compensation failed", func() {
		refundFailure := &commands.RefundFailureError{
			AmountCents: 500,
			Primary:     errors.New("order create: insert failed"),
			RefundErr:   errors.New("refund: gateway down"),
		}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, co.Token, idemKey, true).
			Return(nil, refundFailure).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(idemKey))

		s.Equal(http.StatusInternalServerError, rec.Code)
		body := decodeBody(s.T(), rec)
		s.Equal(float64(500), body["refundCents"])
		s.Equal("manual_reconciliation_required", body["supportState"])
	})

	s.Run("error: maps submission errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft not found",
				commandsError:  errs.ErrDraftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "draft expired",
				commandsError:  errs.ErrDraftExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "draft already submitted",
				commandsError:  errs.ErrDraftConsumed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already submitted",
			},
			{
				name:           "submission in flight",
				commandsError:  errs.ErrSubmitInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in progress",
			},
			{
				name:           "idempotency record in progress",
				commandsError:  errs.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "currently being processed",
			},
			{
				name:           "key reused with different parameters",
				commandsError:  errs.ErrDuplicateSubmission,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Duplicate submission",
			},
			{
				name:           "insufficient points",
				commandsError:  errs.ErrInsufficientPoints,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient points",
			},
			{
				name:           "order create failed without a deduct to roll back",
				commandsError:  errs.Mark(errors.New("insert orders: connection reset"), errs.ErrOrderCreateFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Order creation failed",
			},
			{
				name:           "order create failed and points were refunded",
				commandsError:  errs.Mark(errs.Mark(errors.New("insert orders: connection reset"), errs.ErrPointsRefunded), errs.ErrOrderCreateFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "points were refunded",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), s.userID, co.Token, idemKey, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(idemKey))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
