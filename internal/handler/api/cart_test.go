//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	ht "net/http/httptest"
	"testing"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/discount"
	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
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

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	userID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockQueries, s.mockCommands, config.NewTestConfig())
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("member", false)
		c.Next()
	}

	// Setup routes
	s.router.GET("/cart", authMiddleware, s.handler.GetCart)
	s.router.PUT("/cart/selection", authMiddleware, s.handler.UpdateSelection)
	s.router.POST("/cart/coupon", authMiddleware, s.handler.ApplyCouponByCode)
	s.router.PUT("/cart/coupon/:id", authMiddleware, s.handler.ApplyCouponByID)
	s.router.DELETE("/cart/coupon", authMiddleware, s.handler.RemoveCoupon)
	s.router.POST("/cart/points", authMiddleware, s.handler.StagePoints)
	s.router.POST("/cart/points/apply", authMiddleware, s.handler.ApplyPoints)
	s.router.POST("/cart/checkout-transfer", authMiddleware, s.handler.CreateTransfer)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func decodeBody(t *testing.T, rec *ht.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v (%s)", err, rec.Body.String())
	}
	return body
}

// ================================================================================
// TestGetCart
// ================================================================================

func (s *CartHandlerTestSuite) TestGetCart() {
	url := "/cart"

	view := builder.NewCartBuilder().BuildView()

	s.Run("success: returns 200 OK with the full cart view", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.userID, false).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(view.Items[0].ID, response.Items[0].ID)
		s.Require().NotNil(response.Coupon)
		s.Equal("SAVE10", response.Coupon.Code)
		s.Equal(int64(1000), response.Summary.CouponDiscountCents)
		s.Equal(view.PayableCents, response.Summary.PayableCents)
		s.Require().NotNil(response.BalanceCents)
		s.Equal(view.BalanceCents, *response.BalanceCents)
		s.Len(response.AvailableCoupons, 1)
	})

	s.Run("success: omits balance when the ledger read did not arrive", func() {
		unknown := builder.NewCartBuilder().BuildView()
		unknown.BalanceKnown = false
		s.mockQueries.EXPECT().Get(gomock.Any(), s.userID, false).
			Return(unknown, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.BalanceCents)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "cart not found",
				queriesError:   errs.ErrCartNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Cart not found",
			},
			{
				name:           "points service timed out",
				queriesError:   errs.ErrNetworkTimeout,
				expectedStatus: http.StatusGatewayTimeout,
				expectedMsg:    "timed out",
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
				s.mockQueries.EXPECT().Get(gomock.Any(), s.userID, false).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateSelection
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateSelection() {
	url := "/cart/selection"

	cart := builder.NewCartBuilder()
	state := cart.BuildState()
	reqBody := map[string]any{"selected_item_ids": []string{cart.ItemID.String()}}

	s.Run("success: returns 200 OK with the reconciled state", func() {
		s.mockCommands.EXPECT().UpdateSelection(gomock.Any(), s.userID, []uuid.UUID{cart.ItemID}).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10000), response.Summary.SubtotalCents)
		s.Equal(int64(350), response.Summary.ShippingCents)
	})

	s.Run("success: surfaces reconciliation notices", func() {
		cleared := cart.BuildState()
		cleared.State.Coupon = nil
		cleared.Notices = []discount.Notice{{Kind: discount.NoticeCouponCleared, CouponCode: "SAVE10"}}
		s.mockCommands.EXPECT().UpdateSelection(gomock.Any(), s.userID, gomock.Any()).
			Return(cleared, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Coupon)
		s.Require().Len(response.Notices, 1)
		s.Equal("coupon_cleared", response.Notices[0].Kind)
		s.Equal("SAVE10", response.Notices[0].CouponCode)
	})

	s.Run("error: 400 Bad Request when selected_item_ids is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("selected_item_ids", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for a missing cart", func() {
		s.mockCommands.EXPECT().UpdateSelection(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.ErrCartNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

// ================================================================================
// TestApplyCouponByCode
// ================================================================================

func (s *CartHandlerTestSuite) TestApplyCouponByCode() {
	url := "/cart/coupon"

	state := builder.NewCartBuilder().BuildState()
	reqBody := map[string]any{"code": "SAVE10"}

	s.Run("success: returns 200 OK with the coupon applied", func() {
		s.mockCommands.EXPECT().ApplyCouponByCode(gomock.Any(), s.userID, "SAVE10", false).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Coupon)
		s.Equal("SAVE10", response.Coupon.Code)
		s.Equal(int64(1000), response.Coupon.DiscountCents)
	})

	s.Run("success: handler trims the typed code before the command", func() {
		s.mockCommands.EXPECT().ApplyCouponByCode(gomock.Any(), s.userID, "SAVE10", false).
			Return(state, nil).Times(1)

		padded := map[string]any{"code": "  SAVE10  "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, padded, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 with the rejection reason and code", func() {
		rejected := &coupon.RejectedError{Code: "MIN500", Reason: coupon.ReasonBelowMinSpend}
		s.mockCommands.EXPECT().ApplyCouponByCode(gomock.Any(), s.userID, "MIN500", false).
			Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "MIN500"}, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody(s.T(), rec)
		s.Equal("Coupon rejected", body["error"])
		s.Equal(string(coupon.ReasonBelowMinSpend), body["reason"])
		s.Equal("MIN500", body["code"])
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestApplyCouponByID
// ================================================================================

func (s *CartHandlerTestSuite) TestApplyCouponByID() {
	state := builder.NewCartBuilder().BuildState()

	s.Run("success: returns 200 OK for a valid catalog id", func() {
		s.mockCommands.EXPECT().ApplyCouponByID(gomock.Any(), s.userID, int64(7), false).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/coupon/7", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for non-numeric or non-positive ids", func() {
		for _, id := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/coupon/"+id, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon id")
		}
	})

	s.Run("error: 422 when the offered coupon no longer qualifies", func() {
		rejected := &coupon.RejectedError{Code: "MEMBERS", Reason: coupon.ReasonNotEligible}
		s.mockCommands.EXPECT().ApplyCouponByID(gomock.Any(), s.userID, int64(9), false).
			Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/coupon/9", nil, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody(s.T(), rec)
		s.Equal(string(coupon.ReasonNotEligible), body["reason"])
	})
}

// ================================================================================
// TestRemoveCoupon
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveCoupon() {
	url := "/cart/coupon"

	s.Run("success: returns 200 OK without a coupon", func() {
		bare := builder.NewCartBuilder().With(func(b *builder.CartBuilder) {
			b.CouponCode = ""
		}).BuildState()
		s.mockCommands.EXPECT().RemoveCoupon(gomock.Any(), s.userID).
			Return(bare, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Coupon)
		s.Zero(response.Summary.CouponDiscountCents)
	})
}

// ================================================================================
// TestStagePoints
// ================================================================================

func (s *CartHandlerTestSuite) TestStagePoints() {
	url := "/cart/points"

	state := builder.NewCartBuilder().BuildState()

	s.Run("success: returns 200 OK with the staged points", func() {
		s.mockCommands.EXPECT().StagePoints(gomock.Any(), s.userID, int64(200)).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 200}, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(200), response.PointsRequested)
	})

	s.Run("success: zero points clears the staging", func() {
		s.mockCommands.EXPECT().StagePoints(gomock.Any(), s.userID, int64(0)).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 0}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for negative points", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": -1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestApplyPoints
// ================================================================================

func (s *CartHandlerTestSuite) TestApplyPoints() {
	url := "/cart/points/apply"

	state := builder.NewCartBuilder().BuildState()

	s.Run("success: returns 200 OK with points converted to discount", func() {
		s.mockCommands.EXPECT().ApplyPoints(gomock.Any(), s.userID).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(200), response.Summary.PointsApplied)
		s.Equal(int64(200), response.Summary.PointsDiscountCents)
	})

	s.Run("error: maps ledger errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "insufficient points",
				commandsError:  errs.ErrInsufficientPoints,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient points",
			},
			{
				name:           "ledger timed out",
				commandsError:  errs.ErrNetworkTimeout,
				expectedStatus: http.StatusGatewayTimeout,
				expectedMsg:    "timed out",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApplyPoints(gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateTransfer
// ================================================================================

func (s *CartHandlerTestSuite) TestCreateTransfer() {
	url := "/cart/checkout-transfer"

	token := uuid.New()
	result := builder.NewCartBuilder().BuildTransferResult(token)

	s.Run("success: returns 201 Created with the transfer token", func() {
		s.mockCommands.EXPECT().CreateTransfer(gomock.Any(), s.userID, false).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.TransferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(token, response.Token)
	})

	s.Run("success: reset flag is forwarded", func() {
		s.mockCommands.EXPECT().CreateTransfer(gomock.Any(), s.userID, true).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reset": true}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request with no selected items", func() {
		s.mockCommands.EXPECT().CreateTransfer(gomock.Any(), s.userID, false).
			Return(nil, errs.ErrEmptySelection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No items selected")
	})
}
