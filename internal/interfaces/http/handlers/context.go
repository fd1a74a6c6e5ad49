package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/shared/constants"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
)

// CurrentAccountID returns the account placed in the context by
// AuthMiddleware.
func CurrentAccountID(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, apperrors.NewMissingTokenError()
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, apperrors.NewTokenInvalidError("account missing from request context")
	}
	return id, nil
}

// BindJSON decodes the body into req and reports binding failures as
// validation errors.
func BindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}
