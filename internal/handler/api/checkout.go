package api

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/domain/coupon"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutQueries  queries.CheckoutQueries
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutQueries queries.CheckoutQueries, checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutQueries:  checkoutQueries,
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Checkout page
// @Description Draft, delivery form, address book and balance in one load
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param token query string true "Transfer token"
// @Success 200 {object} resdto.CheckoutPageResponse
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /checkout [get]
func (h *CheckoutHandler) GetPage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := uuid.Parse(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer token"})
		return
	}

	page, err := h.checkoutQueries.PageByToken(c.Request.Context(), userID, token)
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutPage(page))
}

// @Summary Update delivery form
// @Description Apply one transition of the delivery state machine
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateDeliveryRequest true "Delivery update"
// @Success 200 {object} resdto.DeliveryFormResponse
// @Router /checkout/delivery [put]
func (h *CheckoutHandler) UpdateDelivery(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form, err := h.checkoutCommands.UpdateDelivery(c.Request.Context(), userID, req.Token, req.ToUpdate())
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDeliveryForm(form))
}

// @Summary Preview order
// @Description Compose the full draft without side effects
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewRequest true "Transfer token"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 422 {object} map[string]string
// @Router /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.checkoutCommands.Preview(c.Request.Context(), userID, req.Token, middleware.IsMember(c))
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreviewResult(result))
}

// @Summary Confirm order
// @Description Submit the composed order; idempotent per Idempotency-Key
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.ConfirmRequest true "Transfer token"
// @Success 201 {object} resdto.ConfirmResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.checkoutCommands.Confirm(c.Request.Context(), userID, req.Token, idempotencyKey, middleware.IsMember(c))
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromConfirmResult(result))
}

func (h *CheckoutHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error) {
	var rejected *coupon.RejectedError
	var refundFailure *commands.RefundFailureError
	switch {
	case errors.As(err, &refundFailure):
		// The amount must reach the caller: the deduct stuck and support has
		// to reconcile it by hand.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "Order submission failed and points refund did not complete",
			"refundCents":  refundFailure.AmountCents,
			"supportState": "manual_reconciliation_required",
		})
	case errors.As(err, &rejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Coupon rejected",
			"reason": string(rejected.Reason),
			"code":   rejected.Code,
		})
	case errors.Is(err, errs.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout draft not found"})
	case errors.Is(err, errs.ErrDraftExpired):
		c.JSON(http.StatusGone, gin.H{"error": "Checkout draft expired"})
	case errors.Is(err, errs.ErrDraftConsumed):
		c.JSON(http.StatusConflict, gin.H{"error": "Checkout draft already submitted"})
	case errors.Is(err, errs.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Submission is currently being processed"})
	case errors.Is(err, errs.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate submission with different parameters"})
	case errors.Is(err, errs.ErrInsufficientPoints):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient points balance"})
	case errors.Is(err, errs.ErrNetworkTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Points service timed out"})
	case errors.Is(err, errs.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, errs.ErrEmptySelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items selected"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	case errors.Is(err, errs.ErrPointsRefunded):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed; points were refunded"})
	case errors.Is(err, errs.ErrOrderCreateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
