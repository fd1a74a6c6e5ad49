package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
)

// PublicRouteConfig holds dependencies for unauthenticated catalog routes.
type PublicRouteConfig struct {
	PublicHandler *handlers.PublicHandler
}

// SetupPublicRoutes configures the public plan catalog and site settings.
func SetupPublicRoutes(api *gin.RouterGroup, cfg *PublicRouteConfig) {
	api.GET("/plans", cfg.PublicHandler.ListPlans)
	api.GET("/settings/public", cfg.PublicHandler.GetSettings)
}
