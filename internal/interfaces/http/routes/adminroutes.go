package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/talento-hq/talento/internal/interfaces/http/handlers/admin"
	"github.com/talento-hq/talento/internal/interfaces/http/middleware"
	"github.com/talento-hq/talento/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	DashboardHandler     *adminHandlers.DashboardHandler
	SettingHandler       *adminHandlers.SettingHandler
	PlanHandler          *adminHandlers.PlanHandler
	UserHandler          *adminHandlers.UserHandler
	PaymentHandler       *adminHandlers.PaymentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the super admin console.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequireRole(authorization.RoleSuperAdmin),
		cfg.PermissionMiddleware.Authorize(),
	)

	admin.GET("/dashboard", cfg.DashboardHandler.GetDashboard)

	settings := admin.Group("/settings")
	{
		settings.GET("", cfg.SettingHandler.GetSettings)
		settings.POST("/test-email", cfg.SettingHandler.SendTestEmail)
		settings.PUT("/:section", cfg.SettingHandler.UpdateSection)
	}

	plans := admin.Group("/plans")
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.PUT("/:id", cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", cfg.PlanHandler.DeletePlan)
		plans.PATCH("/:id/toggle", cfg.PlanHandler.TogglePlan)
	}

	users := admin.Group("/users")
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.PUT("/:id/plan", cfg.UserHandler.AssignPlan)
	}

	payments := admin.Group("/payments")
	{
		payments.GET("/pending", cfg.PaymentHandler.ListPending)
		payments.POST("/:id/approve", cfg.PaymentHandler.Approve)
		payments.POST("/:id/reject", cfg.PaymentHandler.Reject)
	}
}
