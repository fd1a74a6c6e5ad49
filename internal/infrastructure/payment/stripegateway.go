// Package payment holds the hosted checkout providers.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/talento-hq/talento/internal/application/payment/paymentgateway"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// StripeGateway opens Stripe Checkout sessions in payment mode. A client is
// built per call because the secret key can change at runtime.
type StripeGateway struct {
	backends *stripe.Backends
	logger   logger.Interface
}

func NewStripeGateway(logger logger.Interface) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// NewStripeGatewayWithBackends points the client at custom backends, such
// as a local stub server.
func NewStripeGatewayWithBackends(backends *stripe.Backends, logger logger.Interface) *StripeGateway {
	return &StripeGateway{backends: backends, logger: logger}
}

func (g *StripeGateway) Name() string {
	return "stripe"
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, creds sharedConfig.StripeConfig, req paymentgateway.CheckoutRequest) (*paymentgateway.CheckoutSession, error) {
	if !paymentgateway.Configured(creds) {
		return nil, paymentgateway.ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.PaymentSID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.PlanName),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"payment_sid": req.PaymentSID,
			"account_sid": req.AccountSID,
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	// Derived from the payment SID so a retried request cannot open a
	// second session for the same payment.
	params.SetIdempotencyKey(uuid.NewSHA1(uuid.NameSpaceURL, []byte("talento:checkout:"+req.PaymentSID)).String())

	sc := client.New(creds.SecretKey, g.backends)
	sess, err := sc.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Errorw("stripe checkout session creation failed",
			"payment_sid", req.PaymentSID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &paymentgateway.CheckoutSession{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

func (g *StripeGateway) ParseWebhook(creds sharedConfig.StripeConfig, payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if creds.WebhookSecret == "" {
		return nil, paymentgateway.ErrNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, creds.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", paymentgateway.ErrInvalidSignature, err)
	}

	out := &paymentgateway.WebhookEvent{
		ID:   event.ID,
		Type: paymentgateway.WebhookEventType(event.Type),
	}

	switch out.Type {
	case paymentgateway.WebhookCheckoutCompleted, paymentgateway.WebhookCheckoutExpired:
		if event.Data == nil {
			return nil, errors.New("webhook event has no data")
		}
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		out.SessionID = sess.ID
	}
	return out, nil
}
