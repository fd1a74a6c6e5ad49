package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/events"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

// PaymentMailer sends the payment notifications.
type PaymentMailer interface {
	SendPaymentApproved(to string, data PaymentEmailData) error
	SendPaymentRejected(to string, data PaymentEmailData) error
}

// PaymentNotifier emails the account owner when a payment is decided.
// Delivery is best-effort: failures are logged and never reach the workflow.
type PaymentNotifier struct {
	payments payment.Repository
	accounts account.Repository
	plans    plan.Repository
	mailer   PaymentMailer
	logger   logger.Interface
}

func NewPaymentNotifier(
	payments payment.Repository,
	accounts account.Repository,
	plans plan.Repository,
	mailer PaymentMailer,
	logger logger.Interface,
) *PaymentNotifier {
	return &PaymentNotifier{
		payments: payments,
		accounts: accounts,
		plans:    plans,
		mailer:   mailer,
		logger:   logger,
	}
}

// Register subscribes the notifier to payment events.
func (n *PaymentNotifier) Register(d events.EventSubscriber) error {
	if err := d.Subscribe(payment.EventTypePaymentCompleted, events.HandlerFunc(n.handle)); err != nil {
		return err
	}
	return d.Subscribe(payment.EventTypePaymentFailed, events.HandlerFunc(n.handle))
}

func (n *PaymentNotifier) handle(event events.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	var err error
	switch e := event.(type) {
	case *payment.PaymentCompletedEvent:
		err = n.notifyApproved(ctx, e)
	case *payment.PaymentFailedEvent:
		err = n.notifyRejected(ctx, e)
	default:
		return nil
	}

	if errors.Is(err, ErrEmailServiceNotConfigured) {
		return nil
	}
	if err != nil {
		n.logger.Warnw("failed to send payment notification",
			"event_type", event.GetEventType(),
			"payment_sid", event.GetAggregateID(),
			"error", err,
		)
	}
	return err
}

func (n *PaymentNotifier) notifyApproved(ctx context.Context, e *payment.PaymentCompletedEvent) error {
	to, data, err := n.load(ctx, e.PaymentSID)
	if err != nil {
		return err
	}
	if err := n.mailer.SendPaymentApproved(to, data); err != nil {
		return err
	}
	n.logger.Infow("payment approved email sent", "payment_sid", e.PaymentSID)
	return nil
}

// notifyRejected only covers admin rejections; an abandoned checkout is not
// worth an email.
func (n *PaymentNotifier) notifyRejected(ctx context.Context, e *payment.PaymentFailedEvent) error {
	if e.Method != vo.PaymentMethodManual.String() {
		return nil
	}
	to, data, err := n.load(ctx, e.PaymentSID)
	if err != nil {
		return err
	}
	data.Reason = e.Reason
	if err := n.mailer.SendPaymentRejected(to, data); err != nil {
		return err
	}
	n.logger.Infow("payment rejected email sent", "payment_sid", e.PaymentSID)
	return nil
}

func (n *PaymentNotifier) load(ctx context.Context, paymentSID string) (string, PaymentEmailData, error) {
	p, err := n.payments.GetBySID(ctx, paymentSID)
	if err != nil {
		return "", PaymentEmailData{}, fmt.Errorf("failed to load payment: %w", err)
	}
	acc, err := n.accounts.GetByID(ctx, p.AccountID())
	if err != nil {
		return "", PaymentEmailData{}, fmt.Errorf("failed to load account: %w", err)
	}
	pl, err := n.plans.GetByID(ctx, p.PlanID())
	if err != nil {
		return "", PaymentEmailData{}, fmt.Errorf("failed to load plan: %w", err)
	}
	return acc.Email(), PaymentEmailData{
		Name:     acc.Name(),
		PlanName: pl.Name(),
		Amount:   p.Amount().String(),
	}, nil
}
