package admin

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/infrastructure/email"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// maxSettingsPatchBytes bounds a section patch; legal pages are the largest.
const maxSettingsPatchBytes = 1 << 20

// SettingHandler handles the settings singleton admin API operations
type SettingHandler struct {
	service settingsService
	mailer  testEmailSender
	logger  logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(service settingsService, mailer testEmailSender, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		service: service,
		mailer:  mailer,
		logger:  logger,
	}
}

// TestEmailRequest names the recipient of a configuration test email
type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetSettings returns every section with secrets masked
// @Summary Get settings
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/settings [get]
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSection applies a partial JSON patch to one section
// @Summary Update settings section
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param section path string true "Section name"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/settings/{section} [put]
func (h *SettingHandler) UpdateSection(c *gin.Context) {
	adminID, err := handlers.CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	patch, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSettingsPatchBytes))
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	section := c.Param("section")
	result, err := h.service.UpdateSection(c.Request.Context(), section, patch, adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("settings section updated", "section", section, "admin_id", adminID)
	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}

// SendTestEmail sends a message through the current SMTP configuration
// @Summary Send test email
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/settings/test-email [post]
func (h *SettingHandler) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.mailer.SendTestEmail(req.Email); err != nil {
		if errors.Is(err, email.ErrEmailServiceNotConfigured) {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("Email is not configured"))
			return
		}
		h.logger.Warnw("failed to send test email", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("Failed to send test email", err.Error()))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test email sent", nil)
}
