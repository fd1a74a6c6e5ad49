package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/application/payment/usecases"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// PaymentHandler handles the manual payment review queue
type PaymentHandler struct {
	pendingUC listPendingPaymentsUseCase
	approveUC approvePaymentUseCase
	rejectUC  rejectPaymentUseCase
	logger    logger.Interface
}

// NewPaymentHandler creates a new admin payment handler
func NewPaymentHandler(
	pendingUC listPendingPaymentsUseCase,
	approveUC approvePaymentUseCase,
	rejectUC rejectPaymentUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		pendingUC: pendingUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
		logger:    logger,
	}
}

// RejectPaymentRequest carries the reason shown to the member
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=1000"`
}

// ListPending returns pending manual payments, oldest first
// @Summary List pending payments
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/payments/pending [get]
func (h *PaymentHandler) ListPending(c *gin.Context) {
	result, err := h.pendingUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Approve completes a pending payment and applies its plan
// @Summary Approve payment
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path string true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/payments/{id}/approve [post]
func (h *PaymentHandler) Approve(c *gin.Context) {
	adminID, err := handlers.CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApprovePaymentCommand{
		PaymentSID: c.Param("id"),
		AdminID:    adminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment approved", result)
}

// Reject accepts an empty body; the reason is optional
// @Summary Reject payment
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Payment ID"
// @Param request body RejectPaymentRequest false "Rejection reason"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/payments/{id}/reject [post]
func (h *PaymentHandler) Reject(c *gin.Context) {
	adminID, err := handlers.CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := handlers.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectPaymentCommand{
		PaymentSID: c.Param("id"),
		AdminID:    adminID,
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment rejected", result)
}
