package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type TogglePlanUseCase struct {
	planRepo plan.Repository
	cache    PublicPlanCache
	logger   logger.Interface
}

func NewTogglePlanUseCase(planRepo plan.Repository, cache PublicPlanCache, logger logger.Interface) *TogglePlanUseCase {
	return &TogglePlanUseCase{
		planRepo: planRepo,
		cache:    cacheOrNop(cache),
		logger:   logger,
	}
}

func (uc *TogglePlanUseCase) Execute(ctx context.Context, planSID string) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		return nil, mapPlanError(err)
	}

	active := p.ToggleActive()
	if err := uc.planRepo.Update(ctx, p); err != nil {
		return nil, mapPlanError(err)
	}
	uc.cache.Invalidate(ctx)

	uc.logger.Infow("plan toggled", "plan_sid", planSID, "active", active)
	return dto.ToPlanDTO(p), nil
}
