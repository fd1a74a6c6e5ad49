package admin

import (
	"github.com/gin-gonic/gin"

	adminUsecases "github.com/talento-hq/talento/internal/application/admin/usecases"
	paymentUsecases "github.com/talento-hq/talento/internal/application/payment/usecases"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// UserHandler handles member account administration
type UserHandler struct {
	listUC   listAccountsUseCase
	assignUC assignPlanUseCase
	logger   logger.Interface
}

// NewUserHandler creates a new admin user handler
func NewUserHandler(listUC listAccountsUseCase, assignUC assignPlanUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUC:   listUC,
		assignUC: assignUC,
		logger:   logger,
	}
}

// AssignPlanRequest moves a member onto a plan without a gateway payment
type AssignPlanRequest struct {
	PlanID string `json:"planId" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=1000"`
}

// ListUsers pages through member accounts
// @Summary List users
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), adminUsecases.ListAccountsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// AssignPlan records an approved manual payment and switches the member's plan
// @Summary Assign plan
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body AssignPlanRequest true "Plan to assign"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id}/plan [put]
func (h *UserHandler) AssignPlan(c *gin.Context) {
	adminID, err := handlers.CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accountSID := c.Param("id")

	var req AssignPlanRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for assign plan",
			"account_sid", accountSID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), paymentUsecases.AssignPlanCommand{
		AdminID:    adminID,
		AccountSID: accountSID,
		PlanSID:    req.PlanID,
		Note:       req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan assigned successfully")
}
