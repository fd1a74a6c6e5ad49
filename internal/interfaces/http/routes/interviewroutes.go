package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
)

// InterviewRouteConfig holds dependencies for interview routes.
type InterviewRouteConfig struct {
	InterviewHandler     *handlers.InterviewHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupInterviewRoutes configures member interview routes and the public
// candidate flow addressed by share link.
func SetupInterviewRoutes(api *gin.RouterGroup, cfg *InterviewRouteConfig) {
	interviews := api.Group("/interviews")
	{
		// Candidate flow (no account)
		interviews.GET("/link/:link", cfg.InterviewHandler.GetByLink)
		interviews.POST("/link/:link/start", cfg.InterviewHandler.Start)
		interviews.POST("/link/:link/submit", cfg.InterviewHandler.Submit)

		protected := interviews.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.Authorize())
		{
			protected.POST("", cfg.InterviewHandler.Create)
			protected.GET("", cfg.InterviewHandler.List)
			protected.GET("/:id/report", cfg.InterviewHandler.Report)
		}
	}

	api.GET("/dashboard",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.Authorize(),
		cfg.InterviewHandler.Dashboard)
}
