package paymentgateway

import (
	"context"
	"errors"

	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
)

var (
	// ErrNotConfigured means the credentials needed for the call are absent.
	ErrNotConfigured = errors.New("payment gateway not configured")
	// ErrInvalidSignature means a webhook payload failed verification.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// PaymentGateway defines the interface for hosted checkout providers.
// Credentials are passed on every call because admins can rotate them at
// runtime from the settings document.
type PaymentGateway interface {
	Name() string
	CreateCheckout(ctx context.Context, creds sharedConfig.StripeConfig, req CheckoutRequest) (*CheckoutSession, error)
	// ParseWebhook verifies signature against the raw payload before
	// decoding anything.
	ParseWebhook(creds sharedConfig.StripeConfig, payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutRequest contains the data needed to open a hosted checkout
type CheckoutRequest struct {
	PaymentSID    string
	AccountSID    string
	CustomerEmail string
	PlanName      string
	Amount        int64 // Amount in smallest currency unit (e.g., cents: 100 = 1 USD)
	Currency      string
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

type WebhookEventType string

const (
	WebhookCheckoutCompleted WebhookEventType = "checkout.session.completed"
	WebhookCheckoutExpired   WebhookEventType = "checkout.session.expired"
)

// WebhookEvent is the verified, provider-neutral form of a notification.
// Types other than the two checkout events are acknowledged and ignored.
type WebhookEvent struct {
	ID        string
	Type      WebhookEventType
	SessionID string
}

// Configured reports whether creds can open a checkout.
func Configured(creds sharedConfig.StripeConfig) bool {
	return creds.SecretKey != ""
}
