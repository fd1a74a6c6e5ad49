package usecases

import (
	"context"
	"fmt"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// ListPublicPlansUseCase returns active plans in display order. Contact-us
// plans are included and flagged by IsCustom.
type ListPublicPlansUseCase struct {
	planRepo plan.Repository
	cache    PublicPlanCache
	logger   logger.Interface
}

func NewListPublicPlansUseCase(planRepo plan.Repository, cache PublicPlanCache, logger logger.Interface) *ListPublicPlansUseCase {
	return &ListPublicPlansUseCase{
		planRepo: planRepo,
		cache:    cacheOrNop(cache),
		logger:   logger,
	}
}

func (uc *ListPublicPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	if cached, ok := uc.cache.Get(ctx); ok {
		return cached, nil
	}

	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	out := dto.ToPlanDTOList(plans)
	uc.cache.Set(ctx, out)
	return out, nil
}

// ListPlansUseCase returns every plan for the admin console.
type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToPlanDTOList(plans), nil
}
