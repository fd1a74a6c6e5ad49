package payment

import (
	"context"
	"time"

	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)
	GetByExternalRef(ctx context.Context, ref string) (*Payment, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*Payment, error)
	ListPending(ctx context.Context, method vo.PaymentMethod) ([]*Payment, error)
	// ListStalePending returns pending payments of the method created before cutoff.
	ListStalePending(ctx context.Context, method vo.PaymentMethod, cutoff time.Time, limit int) ([]*Payment, error)
	CountPending(ctx context.Context, method vo.PaymentMethod) (int64, error)
	// SumCompleted returns the total of completed payments in cents.
	SumCompleted(ctx context.Context) (int64, error)

	// TransitionFromPending persists the payment's current status and
	// decision metadata only if the stored row is still pending. It
	// reports false when another request already moved the payment.
	TransitionFromPending(ctx context.Context, payment *Payment) (bool, error)
}
