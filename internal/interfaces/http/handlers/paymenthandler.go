package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/application/payment/usecases"
	"github.com/talento-hq/talento/internal/shared/constants"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// maxWebhookBodyBytes matches the largest event payload Stripe sends.
const maxWebhookBodyBytes = 64 << 10

type PaymentHandler struct {
	checkoutUC     createCheckoutUseCase
	submitManualUC submitManualPaymentUseCase
	historyUC      listPaymentHistoryUseCase
	getPaymentUC   getPaymentUseCase
	instructionsUC getManualInstructionsUseCase
	webhookUC      handleWebhookUseCase
	logger         logger.Interface
}

func NewPaymentHandler(
	checkoutUC createCheckoutUseCase,
	submitManualUC submitManualPaymentUseCase,
	historyUC listPaymentHistoryUseCase,
	getPaymentUC getPaymentUseCase,
	instructionsUC getManualInstructionsUseCase,
	webhookUC handleWebhookUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC:     checkoutUC,
		submitManualUC: submitManualUC,
		historyUC:      historyUC,
		getPaymentUC:   getPaymentUC,
		instructionsUC: instructionsUC,
		webhookUC:      webhookUC,
		logger:         logger,
	}
}

type CheckoutRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type ManualPaymentRequest struct {
	PlanID       string `json:"planId" binding:"required"`
	PaymentProof string `json:"paymentProof" binding:"required"`
	Notes        string `json:"notes" binding:"max=1000"`
}

// Checkout starts a hosted checkout for a paid plan
// @Summary Create checkout session
// @Tags Payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CheckoutRequest true "Plan to buy"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckoutRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CreateCheckoutCommand{
		AccountID: accountID,
		PlanSID:   req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checkout session created", result)
}

// SubmitManual records a manual payment for admin review
// @Summary Submit manual payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ManualPaymentRequest true "Plan and payment proof"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/payments/manual [post]
func (h *PaymentHandler) SubmitManual(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ManualPaymentRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitManualUC.Execute(c.Request.Context(), usecases.SubmitManualPaymentCommand{
		AccountID:   accountID,
		PlanSID:     req.PlanID,
		EvidenceRef: req.PaymentProof,
		Note:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Payment, result.Message)
}

// History lists the caller's payments, newest first
// @Summary Payment history
// @Tags Payments
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get returns one of the caller's payments
// @Summary Get payment
// @Tags Payments
// @Produce json
// @Security Bearer
// @Param id path string true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPaymentUC.Execute(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ManualInstructions returns rendered manual payment instructions and payout accounts
// @Summary Manual payment instructions
// @Tags Payments
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/payments/manual-instructions [get]
func (h *PaymentHandler) ManualInstructions(c *gin.Context) {
	result, err := h.instructionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Webhook verifies the signature over the raw body, so the body must not be
// decoded before it reaches the use case.
// @Summary Payment gateway webhook
// @Description Signed gateway event callback
// @Tags Payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("Webhook payload too large"))
			return
		}
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("Invalid webhook payload"))
		return
	}

	signature := c.GetHeader(constants.HeaderStripeSignature)
	if signature == "" {
		signature = c.GetHeader(constants.HeaderMockSignature)
	}

	result, err := h.webhookUC.Execute(c.Request.Context(), payload, signature)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received":  true,
		"handled":   result.Handled,
		"duplicate": result.Duplicate,
	})
}
