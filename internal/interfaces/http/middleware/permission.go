package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/domain/permission"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/constants"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// PermissionMiddleware checks the stored role placed in the context by
// AuthMiddleware. It must run after RequireAuth.
type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// Authorize asks the policy enforcer whether the role may call the request
// path with the request method.
func (m *PermissionMiddleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			utils.ErrorResponseWithError(c, apperrors.NewMissingTokenError())
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role.String(), c.Request.URL.Path, c.Request.Method)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err,
				"role", role,
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			utils.ErrorResponseWithError(c, apperrors.NewInternalError("permission check failed"))
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"role", role,
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			utils.ErrorResponseWithError(c, apperrors.NewForbiddenError("Access denied. Insufficient permissions."))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole admits only the listed roles.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			utils.ErrorResponseWithError(c, apperrors.NewMissingTokenError())
			c.Abort()
			return
		}

		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed",
			"user_id", c.GetUint(constants.ContextKeyUserID),
			"role", role,
			"required_roles", roles)
		utils.ErrorResponseWithError(c, apperrors.NewForbiddenError("Access denied. Insufficient permissions."))
		c.Abort()
	}
}

func roleFromContext(c *gin.Context) (authorization.UserRole, bool) {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return authorization.ParseUserRole(s), true
}
