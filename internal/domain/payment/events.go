package payment

import (
	"time"

	"github.com/talento-hq/talento/internal/domain/shared/events"
)

const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypePaymentFailed    = "payment.failed"
)

// PaymentCompletedEvent is raised after a payment is committed as completed
// and the account moved to the purchased plan.
type PaymentCompletedEvent struct {
	events.BaseEvent
	PaymentSID string
	AccountID  uint
	PlanID     uint
	Method     string
}

func NewPaymentCompletedEvent(p *Payment) *PaymentCompletedEvent {
	return &PaymentCompletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: p.SID(),
			EventType:   EventTypePaymentCompleted,
			OccurredAt:  time.Now().UTC(),
		},
		PaymentSID: p.SID(),
		AccountID:  p.AccountID(),
		PlanID:     p.PlanID(),
		Method:     p.Method().String(),
	}
}

// PaymentFailedEvent is raised when a payment is rejected or its checkout expires.
type PaymentFailedEvent struct {
	events.BaseEvent
	PaymentSID string
	AccountID  uint
	PlanID     uint
	Method     string
	Reason     string
}

func NewPaymentFailedEvent(p *Payment) *PaymentFailedEvent {
	return &PaymentFailedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: p.SID(),
			EventType:   EventTypePaymentFailed,
			OccurredAt:  time.Now().UTC(),
		},
		PaymentSID: p.SID(),
		AccountID:  p.AccountID(),
		PlanID:     p.PlanID(),
		Method:     p.Method().String(),
		Reason:     p.RejectionReason(),
	}
}
