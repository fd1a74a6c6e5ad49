package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/talento-hq/talento/internal/application/payment/paymentgateway"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
)

// MockGateway is an offline stand-in for local development. Checkouts
// redirect straight to the success URL and webhooks are signed with a hex
// HMAC-SHA256 of the raw body keyed by the webhook secret.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Name() string {
	return "mock"
}

func (m *MockGateway) CreateCheckout(ctx context.Context, creds sharedConfig.StripeConfig, req paymentgateway.CheckoutRequest) (*paymentgateway.CheckoutSession, error) {
	if !paymentgateway.Configured(creds) {
		return nil, paymentgateway.ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sessionID := "cs_mock_" + uuid.NewString()
	checkoutURL, err := url.Parse(req.SuccessURL)
	if err != nil {
		return nil, fmt.Errorf("invalid success url: %w", err)
	}
	q := checkoutURL.Query()
	q.Set("session_id", sessionID)
	checkoutURL.RawQuery = q.Encode()

	return &paymentgateway.CheckoutSession{
		SessionID:   sessionID,
		CheckoutURL: checkoutURL.String(),
	}, nil
}

type mockEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (m *MockGateway) ParseWebhook(creds sharedConfig.StripeConfig, payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if creds.WebhookSecret == "" {
		return nil, paymentgateway.ErrNotConfigured
	}

	expected := SignMockPayload(creds.WebhookSecret, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, paymentgateway.ErrInvalidSignature
	}

	var ev mockEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	return &paymentgateway.WebhookEvent{
		ID:        ev.ID,
		Type:      paymentgateway.WebhookEventType(ev.Type),
		SessionID: ev.Data.Object.ID,
	}, nil
}

// SignMockPayload computes the signature MockGateway expects.
func SignMockPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// NewGateway selects a provider by name.
func NewGateway(kind string, stripeGateway *StripeGateway) (paymentgateway.PaymentGateway, error) {
	switch kind {
	case "stripe":
		return stripeGateway, nil
	case "mock":
		return NewMockGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", kind)
	}
}
