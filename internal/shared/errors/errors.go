// Package errors provides application-level error types and utilities.
// It defines the error taxonomy surfaced at the HTTP boundary: validation,
// not found, state conflicts, authentication and external service failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation_error"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeConflict        ErrorType = "conflict"
	ErrorTypeStateConflict   ErrorType = "state_conflict"
	ErrorTypeUnauthorized    ErrorType = "unauthorized"
	ErrorTypeForbidden       ErrorType = "forbidden"
	ErrorTypeInternal        ErrorType = "internal_error"
	ErrorTypeBadRequest      ErrorType = "bad_request"
	ErrorTypeExternalService ErrorType = "external_service_error"
)

// Reason is a machine-readable code clients branch on.
type Reason string

const (
	ReasonMissingToken         Reason = "MissingToken"
	ReasonInvalidToken         Reason = "InvalidToken"
	ReasonExpiredToken         Reason = "ExpiredToken"
	ReasonForbidden            Reason = "Forbidden"
	ReasonInvalidCredentials   Reason = "InvalidCredentials"
	ReasonAccountNotFound      Reason = "AccountNotFound"
	ReasonNoActivePlan         Reason = "NoActivePlan"
	ReasonQuotaExceeded        Reason = "QuotaExceeded"
	ReasonAlreadyProcessed     Reason = "AlreadyProcessed"
	ReasonPlanInUse            Reason = "PlanInUse"
	ReasonContactSalesPlan     Reason = "ContactSalesPlan"
	ReasonGatewayNotConfigured Reason = "GatewayNotConfigured"
	ReasonGatewayUnavailable   Reason = "GatewayUnavailable"
	ReasonInvalidSignature     Reason = "InvalidSignature"
	ReasonRateLimited          Reason = "RateLimited"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType      `json:"type"`
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Details string         `json:"details,omitempty"`
	Reason  Reason         `json:"reason,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// WithReason sets the machine-readable reason and returns the same error.
func (e *AppError) WithReason(reason Reason) *AppError {
	e.Reason = reason
	return e
}

// WithContext attaches a structured field rendered alongside the message.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details).
		WithReason(ReasonForbidden)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewTooManyRequestsError creates a rate limit error
func NewTooManyRequestsError(message string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusTooManyRequests, message, nil).
		WithReason(ReasonRateLimited)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasReason reports whether err is an AppError carrying the given reason.
func HasReason(err error, reason Reason) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Reason == reason
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
