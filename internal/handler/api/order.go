package api

import (
	"errors"
	"net/http"

	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orderQueries: orderQueries}
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get user orders
// @Description All orders for the current user, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromOrderViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
