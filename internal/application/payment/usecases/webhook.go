package usecases

import (
	"context"
	"errors"

	"github.com/talento-hq/talento/internal/application/payment/paymentgateway"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/setting"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// checkoutExpiredReason is recorded when a hosted checkout lapses.
const checkoutExpiredReason = "checkout expired"

// errUnknownSession marks a callback for a session this system never opened,
// e.g. from another integration sharing the gateway account.
var errUnknownSession = errors.New("unknown checkout session")

type WebhookResult struct {
	EventID   string
	Type      string
	Handled   bool
	Duplicate bool
}

type HandleWebhookUseCase struct {
	paymentRepo payment.Repository
	workflow    *Workflow
	gateway     paymentgateway.PaymentGateway
	credentials setting.Provider
	events      WebhookEventStore
	logger      logger.Interface
}

func NewHandleWebhookUseCase(
	paymentRepo payment.Repository,
	workflow *Workflow,
	gateway paymentgateway.PaymentGateway,
	credentials setting.Provider,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		paymentRepo: paymentRepo,
		workflow:    workflow,
		gateway:     gateway,
		credentials: credentials,
		logger:      logger,
	}
}

// WithEventStore enables redelivery short-circuiting.
func (uc *HandleWebhookUseCase) WithEventStore(store WebhookEventStore) *HandleWebhookUseCase {
	uc.events = store
	return uc
}

// Execute verifies and applies a gateway callback. Completing a payment that
// is already completed is a no-op; events the workflow does not care about
// are acknowledged without side effects.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	creds := uc.credentials.GetStripeConfig(ctx)
	event, err := uc.gateway.ParseWebhook(creds, payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, paymentgateway.ErrNotConfigured):
			uc.logger.Warnw("webhook received but gateway is not configured", "gateway", uc.gateway.Name())
			return nil, apperrors.NewGatewayNotConfiguredError()
		case errors.Is(err, paymentgateway.ErrInvalidSignature):
			uc.logger.Warnw("rejected webhook with invalid signature", "gateway", uc.gateway.Name())
			return nil, apperrors.NewInvalidSignatureError()
		}
		uc.logger.Warnw("failed to parse webhook", "error", err, "gateway", uc.gateway.Name())
		return nil, apperrors.NewBadRequestError("Invalid webhook payload")
	}

	result := &WebhookResult{EventID: event.ID, Type: string(event.Type)}
	if uc.seen(ctx, event.ID) {
		uc.logger.Infow("webhook event already processed", "event_id", event.ID, "type", event.Type)
		result.Duplicate = true
		return result, nil
	}

	switch event.Type {
	case paymentgateway.WebhookCheckoutCompleted:
		err = uc.confirm(ctx, event.SessionID)
	case paymentgateway.WebhookCheckoutExpired:
		err = uc.expire(ctx, event.SessionID)
	default:
		uc.logger.Debugw("ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return result, nil
	}
	if errors.Is(err, errUnknownSession) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Handled = true
	uc.markProcessed(ctx, event.ID)
	return result, nil
}

func (uc *HandleWebhookUseCase) seen(ctx context.Context, eventID string) bool {
	if uc.events == nil || eventID == "" {
		return false
	}
	seen, err := uc.events.Seen(ctx, eventID)
	if err != nil {
		uc.logger.Warnw("failed to check webhook event store", "event_id", eventID, "error", err)
		return false
	}
	return seen
}

func (uc *HandleWebhookUseCase) markProcessed(ctx context.Context, eventID string) {
	if uc.events == nil || eventID == "" {
		return
	}
	if err := uc.events.MarkProcessed(ctx, eventID); err != nil {
		uc.logger.Warnw("failed to record webhook event", "event_id", eventID, "error", err)
	}
}

func (uc *HandleWebhookUseCase) lookup(ctx context.Context, sessionID string) (*payment.Payment, error) {
	p, err := uc.paymentRepo.GetByExternalRef(ctx, sessionID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			uc.logger.Warnw("webhook for unknown checkout session", "session_id", sessionID)
			return nil, errUnknownSession
		}
		return nil, err
	}
	return p, nil
}

func (uc *HandleWebhookUseCase) confirm(ctx context.Context, sessionID string) error {
	p, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return err
	}

	changed, err := p.ConfirmByGateway()
	if err != nil {
		if errors.Is(err, payment.ErrAlreadyProcessed) {
			return apperrors.NewAlreadyProcessedError(p.Status().String())
		}
		return apperrors.NewBadRequestError(err.Error())
	}
	if !changed {
		uc.logger.Infow("duplicate checkout confirmation ignored", "payment_sid", p.SID())
		return nil
	}

	err = uc.workflow.Complete(ctx, p)
	if errors.Is(err, errLostRace) {
		fresh, ferr := uc.paymentRepo.GetByID(ctx, p.ID())
		if ferr == nil && fresh.Status().IsCompleted() {
			uc.logger.Infow("concurrent checkout confirmation ignored", "payment_sid", p.SID())
			return nil
		}
		return uc.workflow.alreadyProcessed(ctx, p)
	}
	return err
}

func (uc *HandleWebhookUseCase) expire(ctx context.Context, sessionID string) error {
	p, err := uc.lookup(ctx, sessionID)
	if err != nil {
		return err
	}
	if !p.Status().IsPending() {
		uc.logger.Debugw("expiry for finalized payment ignored", "payment_sid", p.SID(), "status", p.Status())
		return nil
	}
	if err := p.Expire(checkoutExpiredReason); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	if err := uc.workflow.Fail(ctx, p); err != nil && !errors.Is(err, errLostRace) {
		return err
	}
	return nil
}
