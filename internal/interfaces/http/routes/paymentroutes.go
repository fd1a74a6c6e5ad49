package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler       *handlers.PaymentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimitMiddleware
	WebhookRateLimit     ratelimit.RateLimitConfig
}

// SetupPaymentRoutes configures payment routes.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	payments := api.Group("/payments")
	{
		// Authenticated by the gateway signature, not a bearer token
		payments.POST("/webhook",
			rateLimit(cfg.RateLimiter, "webhook", cfg.WebhookRateLimit),
			cfg.PaymentHandler.Webhook)

		paymentsProtected := payments.Group("")
		paymentsProtected.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.Authorize())
		{
			paymentsProtected.POST("/checkout", cfg.PaymentHandler.Checkout)
			paymentsProtected.POST("/manual", cfg.PaymentHandler.SubmitManual)
			paymentsProtected.GET("/history", cfg.PaymentHandler.History)
			paymentsProtected.GET("/manual-instructions", cfg.PaymentHandler.ManualInstructions)
			paymentsProtected.GET("/:id", cfg.PaymentHandler.Get)
		}
	}
}
