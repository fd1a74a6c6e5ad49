package http

import (
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	adminHandlers "github.com/talento-hq/talento/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler *handlers.HealthHandler

	// Member-facing
	authHandler      *handlers.AuthHandler
	publicHandler    *handlers.PublicHandler
	interviewHandler *handlers.InterviewHandler
	paymentHandler   *handlers.PaymentHandler

	// Admin
	adminDashboardHandler *adminHandlers.DashboardHandler
	adminSettingHandler   *adminHandlers.SettingHandler
	adminPlanHandler      *adminHandlers.PlanHandler
	adminUserHandler      *adminHandlers.UserHandler
	adminPaymentHandler   *adminHandlers.PaymentHandler
}
