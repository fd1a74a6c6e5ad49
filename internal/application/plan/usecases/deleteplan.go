package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/domain/plan"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo plan.Repository
	cache    PublicPlanCache
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, cache PublicPlanCache, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		cache:    cacheOrNop(cache),
		logger:   logger,
	}
}

// Execute refuses with PlanInUse while any account references the plan.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, planSID string) error {
	p, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		return mapPlanError(err)
	}

	inUse, err := uc.planRepo.Delete(ctx, p.ID())
	if err != nil {
		return mapPlanError(err)
	}
	if inUse > 0 {
		uc.logger.Infow("plan delete refused, still referenced", "plan_sid", planSID, "accounts", inUse)
		return apperrors.NewPlanInUseError(inUse)
	}
	uc.cache.Invalidate(ctx)

	uc.logger.Infow("plan deleted", "plan_sid", planSID)
	return nil
}
