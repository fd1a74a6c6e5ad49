package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/shared"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const expireBatchSize = 100

// ExpireStaleCheckoutsUseCase fails gateway payments whose checkout was
// opened more than ttl ago and never confirmed.
type ExpireStaleCheckoutsUseCase struct {
	paymentRepo payment.Repository
	workflow    *Workflow
	ttl         time.Duration
	logger      logger.Interface
}

func NewExpireStaleCheckoutsUseCase(paymentRepo payment.Repository, workflow *Workflow, ttl time.Duration, logger logger.Interface) *ExpireStaleCheckoutsUseCase {
	return &ExpireStaleCheckoutsUseCase{
		paymentRepo: paymentRepo,
		workflow:    workflow,
		ttl:         ttl,
		logger:      logger,
	}
}

// Execute returns how many payments it expired.
func (uc *ExpireStaleCheckoutsUseCase) Execute(ctx context.Context) (int, error) {
	cutoff := shared.OlderThan(uc.ttl)
	stale, err := uc.paymentRepo.ListStalePending(ctx, vo.PaymentMethodGateway, cutoff, expireBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale checkouts: %w", err)
	}

	expired := 0
	for _, p := range stale {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		if err := p.Expire(checkoutExpiredReason); err != nil {
			continue
		}
		if err := uc.workflow.Fail(ctx, p); err != nil {
			if errors.Is(err, errLostRace) {
				continue
			}
			uc.logger.Errorw("failed to expire checkout", "error", err, "payment_sid", p.SID())
			continue
		}
		expired++
	}

	if expired > 0 {
		uc.logger.Infow("expired stale checkouts", "count", expired, "cutoff", cutoff)
	}
	return expired, nil
}
