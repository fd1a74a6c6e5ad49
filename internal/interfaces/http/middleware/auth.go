package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/shared/constants"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// Authenticator resolves a bearer token to the stored account.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*account.Account, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// RequireAuth rejects requests without a valid bearer token. The account is
// loaded from storage on every request, so the role placed in the context
// is the stored one, not whatever was true when the token was issued.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, apperrors.NewMissingTokenError())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.ErrorResponseWithError(c, apperrors.NewTokenInvalidError("invalid authorization header format"))
			c.Abort()
			return
		}

		acc, err := m.authenticator.Execute(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if authErr := apperrors.GetAuthError(err); authErr != nil && authErr.ShouldLog {
				m.logger.Warnw("failed to authenticate request", "error", err, "path", c.Request.URL.Path)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, acc.ID())
		c.Set(constants.ContextKeyAccountSID, acc.SID())
		c.Set(constants.ContextKeyUserRole, acc.Role().String())

		c.Next()
	}
}
