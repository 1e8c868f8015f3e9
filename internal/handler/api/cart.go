package api

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-checkout/internal/domain/coupon"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartQueries   queries.CartQueries
	cartCommands  commands.CartCommands
	shippingCents int64
}

func NewCartHandler(cartQueries queries.CartQueries, cartCommands commands.CartCommands, cfg config.Config) *CartHandler {
	return &CartHandler{
		cartQueries:   cartQueries,
		cartCommands:  cartCommands,
		shippingCents: cfg.Checkout.ShippingCents,
	}
}

// @Summary Get cart
// @Description Cart items with the reconciled discount state and summary
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), userID, middleware.IsMember(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update selection
// @Description Replace the set of selected cart lines
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSelectionRequest true "Selected line ids"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/selection [put]
func (h *CartHandler) UpdateSelection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state, err := h.cartCommands.UpdateSelection(c.Request.Context(), userID, req.SelectedItemIDs)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Apply coupon by code
// @Description Validate a typed coupon code and apply it to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CartResponse
// @Failure 422 {object} map[string]any
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCouponByCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state, err := h.cartCommands.ApplyCouponByCode(c.Request.Context(), userID, req.TrimmedCode(), middleware.IsMember(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Apply coupon by id
// @Description Apply one of the offered coupons by its catalog id
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon id"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon/{id} [put]
func (h *CartHandler) ApplyCouponByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	couponID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || couponID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon id"})
		return
	}

	state, err := h.cartCommands.ApplyCouponByID(c.Request.Context(), userID, couponID, middleware.IsMember(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Remove coupon
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	state, err := h.cartCommands.RemoveCoupon(c.Request.Context(), userID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Stage points
// @Description Stage a number of points to use, clamped to the spendable cap
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StagePointsRequest true "Points to stage"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/points [post]
func (h *CartHandler) StagePoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.StagePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state, err := h.cartCommands.StagePoints(c.Request.Context(), userID, req.Points)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Apply staged points
// @Description Confirm staged points against a fresh balance read
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /cart/points/apply [post]
func (h *CartHandler) ApplyPoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	state, err := h.cartCommands.ApplyPoints(c.Request.Context(), userID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartState(state, h.shippingCents))
}

// @Summary Transfer to checkout
// @Description Snapshot selection and discounts into a checkout draft token
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTransferRequest false "Transfer options"
// @Success 201 {object} resdto.TransferResponse
// @Router /cart/checkout-transfer [post]
func (h *CartHandler) CreateTransfer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateTransferRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	result, err := h.cartCommands.CreateTransfer(c.Request.Context(), userID, req.Reset)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransferResult(result))
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	var rejected *coupon.RejectedError
	switch {
	case errors.As(err, &rejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Coupon rejected",
			"reason": string(rejected.Reason),
			"code":   rejected.Code,
		})
	case errors.Is(err, errs.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, errs.ErrEmptySelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items selected"})
	case errors.Is(err, errs.ErrInsufficientPoints):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient points balance"})
	case errors.Is(err, errs.ErrNetworkTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Points service timed out"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
