package setting

import (
	"context"

	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
)

// Provider resolves runtime configuration that admins may override from
// the settings document. Stored values take precedence over the
// configuration file and environment.
type Provider interface {
	// GetStripeConfig returns the merged gateway credentials.
	GetStripeConfig(ctx context.Context) sharedConfig.StripeConfig

	// GetEmailConfig returns the merged SMTP configuration.
	GetEmailConfig(ctx context.Context) sharedConfig.EmailConfig
}
