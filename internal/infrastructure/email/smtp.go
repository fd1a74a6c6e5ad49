package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:5173")
}

type SMTPEmailService struct {
	config SMTPConfig
	send   func(m *gomail.Message) error
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// newSMTPEmailServiceWithSender delivers through s instead of dialing.
func newSMTPEmailServiceWithSender(config SMTPConfig, s gomail.Sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		send: func(m *gomail.Message) error {
			return gomail.Send(s, m)
		},
	}
}

// SendPaymentApproved tells the owner their plan is active.
func (s *SMTPEmailService) SendPaymentApproved(to string, data PaymentEmailData) error {
	subject, htmlBody, plainBody, err := render(approvedTemplate, s.withLinks(data))
	if err != nil {
		return err
	}
	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendPaymentRejected tells the owner their manual payment was declined.
func (s *SMTPEmailService) SendPaymentRejected(to string, data PaymentEmailData) error {
	subject, htmlBody, plainBody, err := render(rejectedTemplate, s.withLinks(data))
	if err != nil {
		return err
	}
	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTestEmail sends a test email to verify the configuration
func (s *SMTPEmailService) SendTestEmail(to string) error {
	subject := "Talento SMTP test"
	htmlBody := `<html><body><p>Your SMTP settings work.</p></body></html>`
	plainBody := "Your SMTP settings work."
	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) withLinks(data PaymentEmailData) PaymentEmailData {
	if data.DashboardURL == "" && s.config.BaseURL != "" {
		data.DashboardURL = s.config.BaseURL + "/dashboard"
	}
	return data
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
