package handlers

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/application/payment/usecases"
	"github.com/talento-hq/talento/internal/interfaces/http/handlers/testutil"
	"github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type mockCheckoutUC struct {
	result *dto.CheckoutDTO
	err    error
	cmd    usecases.CreateCheckoutCommand
}

func (m *mockCheckoutUC) Execute(ctx context.Context, cmd usecases.CreateCheckoutCommand) (*dto.CheckoutDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockSubmitManualUC struct {
	result *dto.ManualSubmittedDTO
	err    error
	cmd    usecases.SubmitManualPaymentCommand
}

func (m *mockSubmitManualUC) Execute(ctx context.Context, cmd usecases.SubmitManualPaymentCommand) (*dto.ManualSubmittedDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetPaymentUC struct {
	result     *dto.PaymentDTO
	err        error
	accountID  uint
	paymentSID string
}

func (m *mockGetPaymentUC) Execute(ctx context.Context, accountID uint, paymentSID string) (*dto.PaymentDTO, error) {
	m.accountID = accountID
	m.paymentSID = paymentSID
	return m.result, m.err
}

type mockWebhookUC struct {
	result    *usecases.WebhookResult
	err       error
	payload   []byte
	signature string
}

func (m *mockWebhookUC) Execute(ctx context.Context, payload []byte, signature string) (*usecases.WebhookResult, error) {
	m.payload = payload
	m.signature = signature
	return m.result, m.err
}

func TestPaymentHandler_Checkout(t *testing.T) {
	checkout := &mockCheckoutUC{result: &dto.CheckoutDTO{
		SessionID:   "cs_test_1",
		CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_1",
		Payment:     &dto.PaymentDTO{ID: "pay_1", Amount: 49, Currency: "USD"},
	}}
	handler := NewPaymentHandler(checkout, nil, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/checkout", CheckoutRequest{PlanID: "plan_pro"})
	testutil.SetAuthContext(c, 3)
	handler.Checkout(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan_pro", checkout.cmd.PlanSID)

	var result dto.CheckoutDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, "cs_test_1", result.SessionID)
}

func TestPaymentHandler_Checkout_GatewayNotConfigured(t *testing.T) {
	handler := NewPaymentHandler(&mockCheckoutUC{err: errors.NewGatewayNotConfiguredError()},
		nil, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/checkout", CheckoutRequest{PlanID: "plan_pro"})
	testutil.SetAuthContext(c, 3)
	handler.Checkout(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "GatewayNotConfigured", resp.Code)
}

func TestPaymentHandler_SubmitManual(t *testing.T) {
	submit := &mockSubmitManualUC{result: &dto.ManualSubmittedDTO{
		Message: "Payment submitted for review. Admin will approve within 24 hours.",
		Payment: &dto.PaymentDTO{ID: "pay_2", Status: "pending"},
	}}
	handler := NewPaymentHandler(nil, submit, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/manual", ManualPaymentRequest{
		PlanID:       "plan_pro",
		PaymentProof: "https://cdn.example.com/receipt.png",
		Notes:        "paid via bank",
	})
	testutil.SetAuthContext(c, 3)
	handler.SubmitManual(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), submit.cmd.AccountID)
	assert.Equal(t, "https://cdn.example.com/receipt.png", submit.cmd.EvidenceRef)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Payment submitted for review. Admin will approve within 24 hours.", resp.Message)
}

func TestPaymentHandler_Get_UsesCallerAndParam(t *testing.T) {
	get := &mockGetPaymentUC{err: errors.NewNotFoundError("Payment not found")}
	handler := NewPaymentHandler(nil, nil, nil, get, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/payments/pay_9", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "id", "pay_9")
	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, uint(3), get.accountID)
	assert.Equal(t, "pay_9", get.paymentSID)
}

func TestPaymentHandler_Webhook_PassesRawBody(t *testing.T) {
	webhook := &mockWebhookUC{result: &usecases.WebhookResult{EventID: "evt_1", Handled: true}}
	handler := NewPaymentHandler(nil, nil, nil, nil, nil, webhook, logger.NewNopLogger())

	raw := []byte(`{"id":"evt_1", "type":"checkout.session.completed"}`)
	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/webhook", raw)
	c.Request.Header.Set("Stripe-Signature", "t=1,v1=abc")
	handler.Webhook(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, webhook.payload)
	assert.Equal(t, "t=1,v1=abc", webhook.signature)
	assert.JSONEq(t, `{"received":true,"handled":true,"duplicate":false}`, w.Body.String())
}

func TestPaymentHandler_Webhook_InvalidSignature(t *testing.T) {
	webhook := &mockWebhookUC{err: errors.NewInvalidSignatureError()}
	handler := NewPaymentHandler(nil, nil, nil, nil, nil, webhook, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/webhook", []byte(`{}`))
	c.Request.Header.Set("X-Mock-Signature", "deadbeef")
	handler.Webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "deadbeef", webhook.signature)
}

func TestPaymentHandler_Webhook_RejectsOversizedBody(t *testing.T) {
	webhook := &mockWebhookUC{}
	handler := NewPaymentHandler(nil, nil, nil, nil, nil, webhook, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/payments/webhook", bytes.Repeat([]byte("a"), maxWebhookBodyBytes+1))
	handler.Webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, webhook.payload)
}
