//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/tests/common/httptest"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	handler     *api.OrderHandler
	userID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockQueries)
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
	s.router.GET("/orders", authMiddleware, s.handler.GetUserOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func orderViewFixture(orderID uuid.UUID) *queries.OrderView {
	return &queries.OrderView{
		OrderID:             orderID,
		OrderNumber:         "ORD-20260830-0001",
		Status:              "pending",
		PaymentMethod:       "epay",
		SubtotalCents:       10000,
		ShippingCents:       350,
		CouponDiscountCents: 1000,
		PointsDiscountCents: 200,
		UsedPoints:          200,
		TotalCents:          9150,
		RecipientName:       "Ada Lovelace",
		RecipientPhone:      "090-0000-0000",
		ShippingAddress:     "100-0001 Chiyoda Kanda 1-2-3",
		Lines: []queries.OrderLineView{
			{Name: "Walnut Desk Organizer", UnitPriceCents: 10000, Quantity: 1},
		},
		CreatedAt: time.Now().UTC(),
	}
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	view := orderViewFixture(orderID)

	s.Run("success: returns 200 OK with OrderResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.OrderID)
		s.Equal("ORD-20260830-0001", response.OrderNumber)
		s.Equal("pending", response.Status)
		s.Equal(int64(9150), response.TotalCents)
		s.Equal("Ada Lovelace", response.RecipientName)
		s.Require().Len(response.Lines, 1)
		s.Equal("Walnut Desk Organizer", response.Lines[0].Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order not found",
				queriesError:   errs.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
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
				s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID, s.userID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetUserOrders() {
	url := "/orders"

	s.Run("success: returns 200 OK with the order list", func() {
		views := []queries.OrderView{
			*orderViewFixture(uuid.New()),
			*orderViewFixture(uuid.New()),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].OrderID, response[0].OrderID)
		s.Equal(views[1].OrderID, response[1].OrderID)
	})

	s.Run("success: empty list for a shopper with no orders", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]queries.OrderView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
