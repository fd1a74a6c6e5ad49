package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/talento-hq/talento/internal/application/payment/paymentgateway"
	sharedConfig "github.com/talento-hq/talento/internal/shared/config"
	"github.com/talento-hq/talento/internal/shared/logger"
)

var testCreds = sharedConfig.StripeConfig{
	PublicKey:     "pk_test_x",
	SecretKey:     "sk_test_x",
	WebhookSecret: "whsec_test",
}

var testCheckout = paymentgateway.CheckoutRequest{
	PaymentSID:    "pay_abc",
	AccountSID:    "acct_abc",
	CustomerEmail: "hr@acme.com",
	PlanName:      "Professional",
	Amount:        1800,
	Currency:      "USD",
	SuccessURL:    "http://localhost:5173/payment/success",
	CancelURL:     "http://localhost:5173/payment/cancel",
}

func stubStripe(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGatewayWithBackends(&stripe.Backends{API: backend, Connect: backend, Uploads: backend}, logger.NewNopLogger())
}

func TestStripeGateway_CreateCheckout(t *testing.T) {
	var idempotencyKeys []string
	gw := stubStripe(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "pay_abc", r.PostForm.Get("client_reference_id"))
		assert.Equal(t, "1800", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "Professional", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "pay_abc", r.PostForm.Get("metadata[payment_sid]"))
		assert.Equal(t, "Bearer sk_test_x", r.Header.Get("Authorization"))
		idempotencyKeys = append(idempotencyKeys, r.Header.Get("Idempotency-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_123","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_123"}`))
	})

	sess, err := gw.CreateCheckout(context.Background(), testCreds, testCheckout)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sess.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", sess.CheckoutURL)

	_, err = gw.CreateCheckout(context.Background(), testCreds, testCheckout)
	require.NoError(t, err)
	require.Len(t, idempotencyKeys, 2)
	assert.NotEmpty(t, idempotencyKeys[0])
	assert.Equal(t, idempotencyKeys[0], idempotencyKeys[1])
}

func TestStripeGateway_CreateCheckoutUpstreamError(t *testing.T) {
	gw := stubStripe(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad currency"}}`))
	})

	_, err := gw.CreateCheckout(context.Background(), testCreds, testCheckout)
	assert.Error(t, err)
}

func TestStripeGateway_NotConfigured(t *testing.T) {
	gw := NewStripeGateway(logger.NewNopLogger())

	_, err := gw.CreateCheckout(context.Background(), sharedConfig.StripeConfig{}, testCheckout)
	assert.ErrorIs(t, err, paymentgateway.ErrNotConfigured)

	_, err = gw.ParseWebhook(sharedConfig.StripeConfig{SecretKey: "sk"}, []byte(`{}`), "sig")
	assert.ErrorIs(t, err, paymentgateway.ErrNotConfigured)
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	gw := NewStripeGateway(logger.NewNopLogger())

	tests := []struct {
		name        string
		payload     string
		wantType    paymentgateway.WebhookEventType
		wantSession string
	}{
		{
			name:        "completed",
			payload:     `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","object":"checkout.session"}}}`,
			wantType:    paymentgateway.WebhookCheckoutCompleted,
			wantSession: "cs_test_1",
		},
		{
			name:        "expired",
			payload:     `{"id":"evt_2","object":"event","type":"checkout.session.expired","data":{"object":{"id":"cs_test_2","object":"checkout.session"}}}`,
			wantType:    paymentgateway.WebhookCheckoutExpired,
			wantSession: "cs_test_2",
		},
		{
			name:     "unrelated",
			payload:  `{"id":"evt_3","object":"event","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`,
			wantType: paymentgateway.WebhookEventType("invoice.paid"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
				Payload:   []byte(tt.payload),
				Secret:    testCreds.WebhookSecret,
				Timestamp: time.Now(),
			})

			ev, err := gw.ParseWebhook(testCreds, signed.Payload, signed.Header)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, ev.Type)
			assert.Equal(t, tt.wantSession, ev.SessionID)
		})
	}
}

func TestStripeGateway_ParseWebhookRejectsBadSignature(t *testing.T) {
	gw := NewStripeGateway(logger.NewNopLogger())
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    "whsec_other",
		Timestamp: time.Now(),
	})

	_, err := gw.ParseWebhook(testCreds, payload, signed.Header)
	assert.ErrorIs(t, err, paymentgateway.ErrInvalidSignature)

	_, err = gw.ParseWebhook(testCreds, payload, "")
	assert.ErrorIs(t, err, paymentgateway.ErrInvalidSignature)
}

func TestMockGateway(t *testing.T) {
	gw := NewMockGateway()

	sess, err := gw.CreateCheckout(context.Background(), testCreds, testCheckout)
	require.NoError(t, err)
	assert.Contains(t, sess.SessionID, "cs_mock_")
	assert.Contains(t, sess.CheckoutURL, "session_id="+sess.SessionID)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"` + sess.SessionID + `"}}}`)
	ev, err := gw.ParseWebhook(testCreds, payload, SignMockPayload(testCreds.WebhookSecret, payload))
	require.NoError(t, err)
	assert.Equal(t, paymentgateway.WebhookCheckoutCompleted, ev.Type)
	assert.Equal(t, sess.SessionID, ev.SessionID)

	_, err = gw.ParseWebhook(testCreds, payload, SignMockPayload("wrong", payload))
	assert.ErrorIs(t, err, paymentgateway.ErrInvalidSignature)

	_, err = gw.CreateCheckout(context.Background(), sharedConfig.StripeConfig{}, testCheckout)
	assert.ErrorIs(t, err, paymentgateway.ErrNotConfigured)
}

func TestNewGateway(t *testing.T) {
	stripeGW := NewStripeGateway(logger.NewNopLogger())

	gw, err := NewGateway("stripe", stripeGW)
	require.NoError(t, err)
	assert.Equal(t, "stripe", gw.Name())

	gw, err = NewGateway("mock", stripeGW)
	require.NoError(t, err)
	assert.Equal(t, "mock", gw.Name())

	_, err = NewGateway("paypal", stripeGW)
	assert.Error(t, err)
}
