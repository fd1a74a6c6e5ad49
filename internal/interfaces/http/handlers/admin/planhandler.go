package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/application/plan/usecases"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// PlanHandler handles plan catalog administration
type PlanHandler struct {
	listUC   listPlansUseCase
	createUC createPlanUseCase
	updateUC updatePlanUseCase
	deleteUC deletePlanUseCase
	toggleUC togglePlanUseCase
	logger   logger.Interface
}

// NewPlanHandler creates a new admin plan handler
func NewPlanHandler(
	listUC listPlansUseCase,
	createUC createPlanUseCase,
	updateUC updatePlanUseCase,
	deleteUC deletePlanUseCase,
	toggleUC togglePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		toggleUC: toggleUC,
		logger:   logger,
	}
}

// CreatePlanRequest omitted price, quota and display order take their defaults
type CreatePlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	InterviewLimit *int     `json:"interviewLimit" binding:"omitempty,gte=-1"`
	Features       []string `json:"features"`
	IsActive       *bool    `json:"isActive"`
	IsCustom       bool     `json:"isCustom"`
	IsRecommended  bool     `json:"isRecommended"`
	DisplayOrder   *int     `json:"displayOrder"`
}

// UpdatePlanRequest only non-null fields are applied
type UpdatePlanRequest struct {
	Name           *string  `json:"name"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	InterviewLimit *int     `json:"interviewLimit" binding:"omitempty,gte=-1"`
	Features       []string `json:"features"`
	IsActive       *bool    `json:"isActive"`
	IsCustom       *bool    `json:"isCustom"`
	IsRecommended  *bool    `json:"isRecommended"`
	DisplayOrder   *int     `json:"displayOrder"`
}

// ListPlans returns every plan, active or not, in display order
// @Summary List all plans
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreatePlan adds a plan to the catalog
// @Summary Create plan
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePlanRequest true "Plan data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:           req.Name,
		Price:          req.Price,
		InterviewLimit: req.InterviewLimit,
		Features:       req.Features,
		IsActive:       req.IsActive,
		IsCustom:       req.IsCustom,
		IsRecommended:  req.IsRecommended,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// UpdatePlan applies a partial update to a plan
// @Summary Update plan
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Plan ID"
// @Param request body UpdatePlanRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planSID := c.Param("id")

	var req UpdatePlanRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_sid", planSID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanSID:        planSID,
		Name:           req.Name,
		Price:          req.Price,
		InterviewLimit: req.InterviewLimit,
		Features:       req.Features,
		IsActive:       req.IsActive,
		IsCustom:       req.IsCustom,
		IsRecommended:  req.IsRecommended,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

// DeletePlan is refused while any account or pending payment references the plan
// @Summary Delete plan
// @Description Refused while accounts or pending payments reference the plan
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}

// TogglePlan flips a plan between active and inactive
// @Summary Toggle plan
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/toggle [patch]
func (h *PlanHandler) TogglePlan(c *gin.Context) {
	result, err := h.toggleUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan status updated", result)
}
