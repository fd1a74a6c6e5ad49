package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/application/quota"
)

// QuotaConsumer takes one unit of interview quota inside the caller's
// transaction.
type QuotaConsumer interface {
	Consume(ctx context.Context, accountID uint) (*quota.Decision, error)
}
