package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, orderHandler *api.OrderHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, orderHandler *api.OrderHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPut, Path: "/selection", Handler: cartHandler.UpdateSelection},
				{Method: http.MethodPost, Path: "/coupon", Handler: cartHandler.ApplyCouponByCode},
				{Method: http.MethodPut, Path: "/coupon/:id", Handler: cartHandler.ApplyCouponByID},
				{Method: http.MethodDelete, Path: "/coupon", Handler: cartHandler.RemoveCoupon},
				{Method: http.MethodPost, Path: "/points", Handler: cartHandler.StagePoints},
				{Method: http.MethodPost, Path: "/points/apply", Handler: cartHandler.ApplyPoints},
				{Method: http.MethodPost, Path: "/checkout-transfer", Handler: cartHandler.CreateTransfer},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.GetPage},
				{Method: http.MethodPut, Path: "/delivery", Handler: checkoutHandler.UpdateDelivery},
				{Method: http.MethodPost, Path: "/preview", Handler: checkoutHandler.Preview},
				{Method: http.MethodPost, Path: "/confirm", Handler: checkoutHandler.Confirm},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.GetUserOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
