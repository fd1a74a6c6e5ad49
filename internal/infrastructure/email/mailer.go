package email

import (
	"context"
	"errors"
	"sync"

	"github.com/talento-hq/talento/internal/domain/setting"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// Mailer delivers notifications through the SMTP settings currently stored.
// It rebuilds its client whenever the system settings section is saved, so
// sends never need a restart to pick up new credentials.
type Mailer struct {
	provider setting.Provider
	baseURL  string
	logger   logger.Interface

	mu   sync.RWMutex
	smtp *SMTPEmailService
}

func NewMailer(provider setting.Provider, baseURL string, log logger.Interface) *Mailer {
	return &Mailer{
		provider: provider,
		baseURL:  baseURL,
		logger:   log,
	}
}

// Reload builds the SMTP client from the provider. An empty host leaves the
// mailer disabled.
func (m *Mailer) Reload(ctx context.Context) error {
	client := m.build(m.provider.GetEmailConfig(ctx))

	m.mu.Lock()
	m.smtp = client
	m.mu.Unlock()

	if client == nil {
		m.logger.Debugw("email disabled, smtp host is empty")
	} else {
		m.logger.Infow("email client ready",
			"host", client.config.Host,
			"port", client.config.Port,
			"from", client.config.FromAddress,
		)
	}
	return nil
}

// OnSettingChange reloads on saves of the system section.
func (m *Mailer) OnSettingChange(ctx context.Context, section setting.Section) error {
	if section != setting.SectionSystem {
		return nil
	}
	return m.Reload(ctx)
}

func (m *Mailer) Enabled() bool {
	return m.current() != nil
}

func (m *Mailer) SendPaymentApproved(to string, data PaymentEmailData) error {
	return m.with("payment approved", to, func(s *SMTPEmailService) error {
		return s.SendPaymentApproved(to, data)
	})
}

func (m *Mailer) SendPaymentRejected(to string, data PaymentEmailData) error {
	return m.with("payment rejected", to, func(s *SMTPEmailService) error {
		return s.SendPaymentRejected(to, data)
	})
}

func (m *Mailer) SendTestEmail(to string) error {
	return m.with("test", to, func(s *SMTPEmailService) error {
		return s.SendTestEmail(to)
	})
}

func (m *Mailer) with(kind, to string, send func(*SMTPEmailService) error) error {
	client := m.current()
	if client == nil {
		m.logger.Debugw("email disabled, message dropped", "kind", kind, "to", to)
		return ErrEmailServiceNotConfigured
	}
	return send(client)
}

func (m *Mailer) current() *SMTPEmailService {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.smtp
}

func (m *Mailer) build(cfg sharedConfig.EmailConfig) *SMTPEmailService {
	if !cfg.Enabled() {
		return nil
	}
	return NewSMTPEmailService(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     m.baseURL,
	})
}
