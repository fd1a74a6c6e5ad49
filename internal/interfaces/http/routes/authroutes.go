package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimitMiddleware // nil when rate limiting is disabled
	RateLimit            ratelimit.RateLimitConfig
}

// SetupAuthRoutes configures signup, login and the current account.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	limit := rateLimit(cfg.RateLimiter, "auth", cfg.RateLimit)

	auth := api.Group("/auth")
	{
		auth.POST("/signup", limit, cfg.AuthHandler.Signup)
		auth.POST("/login", limit, cfg.AuthHandler.Login)
		auth.GET("/me",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.Authorize(),
			cfg.AuthHandler.Me)
	}
}

// rateLimit returns a pass-through handler when limiter is nil.
func rateLimit(limiter *middleware.RateLimitMiddleware, scope string, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return limiter.Limit(scope, cfg)
}
