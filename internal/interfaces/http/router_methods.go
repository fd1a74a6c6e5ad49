package http

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
	"github.com/talento-hq/talento/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	cfg := r.cfg

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
		r.engine.GET(cfg.Metrics.Path, gin.WrapH(r.metrics.Handler()))
	}

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:          r.hdlrs.authHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
		RateLimit: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.AuthPerMinute,
			RequestsPerHour:   cfg.RateLimit.AuthPerHour,
		},
	})

	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		PublicHandler: r.hdlrs.publicHandler,
	})

	routes.SetupInterviewRoutes(api, &routes.InterviewRouteConfig{
		InterviewHandler:     r.hdlrs.interviewHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupPaymentRoutes(api, &routes.PaymentRouteConfig{
		PaymentHandler:       r.hdlrs.paymentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
		WebhookRateLimit: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.WebhookPerMinute,
		},
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		DashboardHandler:     r.hdlrs.adminDashboardHandler,
		SettingHandler:       r.hdlrs.adminSettingHandler,
		PlanHandler:          r.hdlrs.adminPlanHandler,
		UserHandler:          r.hdlrs.adminUserHandler,
		PaymentHandler:       r.hdlrs.adminPaymentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}
