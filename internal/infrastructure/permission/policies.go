package permission

import (
	"fmt"

	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const anyMethod = ".*"

// DefaultPolicies grants members the authenticated member surface and super
// admins everything under /api.
func DefaultPolicies() [][]string {
	member := authorization.RoleMember.String()
	admin := authorization.RoleSuperAdmin.String()

	return [][]string{
		{member, "/api/auth/me", "GET"},
		{member, "/api/dashboard", "GET"},
		{member, "/api/interviews", "GET|POST"},
		{member, "/api/interviews/:id/report", "GET"},
		{member, "/api/payments/checkout", "POST"},
		{member, "/api/payments/manual", "POST"},
		{member, "/api/payments/history", "GET"},
		{member, "/api/payments/manual-instructions", "GET"},
		{member, "/api/payments/:id", "GET"},

		{admin, "/api/*", anyMethod},
	}
}

// SyncDefaultPolicies adds any default policy that is missing. Policies an
// operator added by hand are left alone.
func SyncDefaultPolicies(e *Enforcer, log logger.Interface) error {
	added := 0
	for _, p := range DefaultPolicies() {
		exists, err := e.hasPolicy(p[0], p[1], p[2])
		if err != nil {
			return fmt.Errorf("failed to check policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if exists {
			continue
		}
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			log.Errorw("failed to add default policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		added++
	}

	log.Infow("default permissions synced", "added", added)
	return nil
}
