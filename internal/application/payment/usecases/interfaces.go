package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/domain/shared/events"
)

// EventPublisher delivers domain events after the transaction that produced
// them commits.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
}

// TransitionRecorder counts payment transitions by method and outcome.
type TransitionRecorder interface {
	PaymentTransitioned(method, status string)
}

type nopRecorder struct{}

func (nopRecorder) PaymentTransitioned(string, string) {}

type nopPublisher struct{}

func (nopPublisher) Publish(events.DomainEvent) error { return nil }

// WebhookEventStore remembers gateway event IDs that were applied, so
// redelivered callbacks skip the database. It is an optimization only; the
// pending guard keeps replays safe without it.
type WebhookEventStore interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}
