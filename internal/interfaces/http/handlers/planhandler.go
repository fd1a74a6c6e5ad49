package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// PublicHandler serves the unauthenticated catalog: active plans and the
// public part of the settings.
type PublicHandler struct {
	listPublicPlansUC listPublicPlansUseCase
	settings          getPublicSettingsUseCase
	logger            logger.Interface
}

func NewPublicHandler(
	listPublicPlansUC listPublicPlansUseCase,
	settings getPublicSettingsUseCase,
	logger logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		listPublicPlansUC: listPublicPlansUC,
		settings:          settings,
		logger:            logger,
	}
}

// ListPlans returns the active plans in display order
// @Summary List active plans
// @Description Public plan catalog
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/plans [get]
func (h *PublicHandler) ListPlans(c *gin.Context) {
	result, err := h.listPublicPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSettings returns the public settings subset
// @Summary Get public settings
// @Description Branding, contact and payment method toggles
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/settings/public [get]
func (h *PublicHandler) GetSettings(c *gin.Context) {
	result, err := h.settings.GetPublic(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
