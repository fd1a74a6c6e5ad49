package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/talento-hq/talento/internal/domain/setting"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// SettingChangeSubscriber is told about a saved section.
type SettingChangeSubscriber interface {
	OnSettingChange(ctx context.Context, section setting.Section) error
}

// SettingProviderConfig holds the fallbacks from configuration.
type SettingProviderConfig struct {
	Stripe sharedConfig.StripeConfig
	Email  sharedConfig.EmailConfig
}

// SettingProvider resolves hot-reloadable configuration: values stored in the
// settings document win, configuration fills the gaps.
type SettingProvider struct {
	settingRepo setting.Repository
	stripe      sharedConfig.StripeConfig
	email       sharedConfig.EmailConfig
	logger      logger.Interface

	subscribers []SettingChangeSubscriber
	mu          sync.RWMutex
}

func NewSettingProvider(settingRepo setting.Repository, cfg SettingProviderConfig, logger logger.Interface) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		stripe:      cfg.Stripe,
		email:       cfg.Email,
		logger:      logger,
		subscribers: make([]SettingChangeSubscriber, 0),
	}
}

// Subscribe registers a subscriber for setting changes
func (p *SettingProvider) Subscribe(subscriber SettingChangeSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber)
}

// NotifyChange notifies all subscribers of configuration changes
func (p *SettingProvider) NotifyChange(ctx context.Context, section setting.Section) error {
	p.mu.RLock()
	subscribers := make([]SettingChangeSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	var errs []error
	for _, subscriber := range subscribers {
		if err := subscriber.OnSettingChange(ctx, section); err != nil {
			p.logger.Errorw("subscriber failed to handle setting change",
				"section", section,
				"subscriber", fmt.Sprintf("%T", subscriber),
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to notify %d/%d subscribers, first error: %w", len(errs), len(subscribers), errs[0])
	}
	return nil
}

func (p *SettingProvider) load(ctx context.Context) *setting.Settings {
	s, err := p.settingRepo.GetOrCreate(ctx)
	if err != nil {
		p.logger.Warnw("failed to load settings from database, using config", "error", err)
		return nil
	}
	return s
}

// GetStripeConfig returns the merged gateway credentials.
func (p *SettingProvider) GetStripeConfig(ctx context.Context) sharedConfig.StripeConfig {
	config := p.stripe

	s := p.load(ctx)
	if s == nil {
		return config
	}
	stored := s.Payments()
	if stored.StripePublicKey != "" {
		config.PublicKey = stored.StripePublicKey
	}
	if stored.StripeSecretKey != "" {
		config.SecretKey = stored.StripeSecretKey
	}
	if stored.StripeWebhookSecret != "" {
		config.WebhookSecret = stored.StripeWebhookSecret
	}
	return config
}

// GetEmailConfig returns the merged SMTP configuration. The sender identity
// always comes from configuration.
func (p *SettingProvider) GetEmailConfig(ctx context.Context) sharedConfig.EmailConfig {
	config := p.email

	s := p.load(ctx)
	if s == nil {
		return config
	}
	stored := s.System()
	if stored.SMTPHost != "" {
		config.SMTPHost = stored.SMTPHost
	}
	if stored.SMTPPort != 0 {
		config.SMTPPort = stored.SMTPPort
	}
	if stored.SMTPUser != "" {
		config.SMTPUser = stored.SMTPUser
	}
	if stored.SMTPPassword != "" {
		config.SMTPPassword = stored.SMTPPassword
	}
	return config
}

var _ setting.Provider = (*SettingProvider)(nil)
