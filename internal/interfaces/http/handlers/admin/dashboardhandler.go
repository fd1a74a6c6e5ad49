// Package admin provides HTTP handlers for the super admin console.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// DashboardHandler serves the admin overview counters.
type DashboardHandler struct {
	dashboardUC getAdminDashboardUseCase
	logger      logger.Interface
}

// NewDashboardHandler creates a new admin dashboard handler
func NewDashboardHandler(dashboardUC getAdminDashboardUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetDashboard returns user, interview, payment and revenue totals
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get admin dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
