package errors

import (
	"fmt"
	"net/http"
)

// NewAlreadyProcessedError is returned when a payment decision targets a
// payment that already left the pending state.
func NewAlreadyProcessedError(status string) *AppError {
	return &AppError{
		Type:    ErrorTypeStateConflict,
		Message: "Payment already processed",
		Code:    http.StatusBadRequest,
		Reason:  ReasonAlreadyProcessed,
		Context: map[string]any{"status": status},
	}
}

// NewPlanInUseError is returned when deleting a plan that accounts or pending payments still reference.
func NewPlanInUseError(count int64) *AppError {
	return &AppError{
		Type:    ErrorTypeStateConflict,
		Message: fmt.Sprintf("Cannot delete plan. %d account(s) or pending payment(s) still reference it.", count),
		Code:    http.StatusBadRequest,
		Reason:  ReasonPlanInUse,
		Context: map[string]any{"count": count},
	}
}

// NewQuotaExceededError carries enough context for the client to render an
// upgrade prompt.
func NewQuotaExceededError(planName string, used, limit int) *AppError {
	return &AppError{
		Type: ErrorTypeStateConflict,
		Message: fmt.Sprintf(
			"You have reached your plan limit of %d interviews. Please upgrade to continue.", limit),
		Code:   http.StatusForbidden,
		Reason: ReasonQuotaExceeded,
		Context: map[string]any{
			"requiresUpgrade": true,
			"currentPlan":     planName,
			"interviewsUsed":  used,
			"interviewLimit":  limit,
		},
	}
}

// NewNoActivePlanError is returned when an account has no plan reference.
func NewNoActivePlanError() *AppError {
	return &AppError{
		Type:    ErrorTypeStateConflict,
		Message: "No active plan. Please subscribe to a plan.",
		Code:    http.StatusForbidden,
		Reason:  ReasonNoActivePlan,
		Context: map[string]any{"requiresUpgrade": true},
	}
}

// NewAccountNotFoundError is returned when an account id does not resolve.
func NewAccountNotFoundError() *AppError {
	return NewNotFoundError("User not found").WithReason(ReasonAccountNotFound)
}

// NewContactSalesPlanError is returned when a contact-us plan reaches checkout.
func NewContactSalesPlanError() *AppError {
	return NewBadRequestError("This plan requires contacting sales").
		WithReason(ReasonContactSalesPlan).
		WithContext("contactUs", true)
}

// NewGatewayNotConfiguredError is returned when gateway credentials are absent.
func NewGatewayNotConfiguredError() *AppError {
	return &AppError{
		Type:    ErrorTypeExternalService,
		Message: "Payment gateway is not configured",
		Code:    http.StatusInternalServerError,
		Reason:  ReasonGatewayNotConfigured,
	}
}

// NewGatewayError wraps a failure talking to the payment gateway. Details
// stay server-side.
func NewGatewayError() *AppError {
	return &AppError{
		Type:    ErrorTypeExternalService,
		Message: "Payment gateway request failed, please try again",
		Code:    http.StatusInternalServerError,
		Reason:  ReasonGatewayUnavailable,
	}
}

// NewInvalidSignatureError is returned for webhook payloads that fail verification.
func NewInvalidSignatureError() *AppError {
	return NewBadRequestError("Invalid webhook signature").WithReason(ReasonInvalidSignature)
}
