package http

import (
	"context"
	"fmt"

	"github.com/talento-hq/talento/internal/interfaces/http/handlers"
)

// healthChecks adapts the database and redis connections to health pingers.
func (c *Container) healthChecks() map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return fmt.Errorf("get sql db: %w", err)
			}
			return sqlDB.PingContext(ctx)
		},
	}

	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	return checks
}
