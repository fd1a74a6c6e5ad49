package usecases

import (
	"context"
	"fmt"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// DefaultInterviewLimit applies when a new plan omits its limit.
const DefaultInterviewLimit = 5

type CreatePlanCommand struct {
	Name           string
	Price          *float64
	InterviewLimit *int
	Features       []string
	IsActive       *bool
	IsCustom       bool
	IsRecommended  bool
	DisplayOrder   *int
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	cache    PublicPlanCache
	currency string
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, cache PublicPlanCache, currency string, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		cache:    cacheOrNop(cache),
		currency: currency,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	price := 0.0
	if cmd.Price != nil {
		price = *cmd.Price
	}
	limit := DefaultInterviewLimit
	if cmd.InterviewLimit != nil {
		limit = *cmd.InterviewLimit
	}
	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	var order int
	if cmd.DisplayOrder != nil {
		order = *cmd.DisplayOrder
	} else {
		maxOrder, err := uc.planRepo.MaxDisplayOrder(ctx)
		if err != nil {
			uc.logger.Errorw("failed to read max display order", "error", err)
			return nil, fmt.Errorf("failed to read display order: %w", err)
		}
		order = maxOrder + 1
	}

	quota, err := plan.NewInterviewQuota(limit)
	if err != nil {
		return nil, mapPlanError(err)
	}

	p, err := plan.NewPlan(cmd.Name, valueobjects.NewMoneyFromMajor(price, uc.currency), quota, plan.Options{
		Features:      cmd.Features,
		IsActive:      active,
		IsCustom:      cmd.IsCustom,
		IsRecommended: cmd.IsRecommended,
		DisplayOrder:  order,
	})
	if err != nil {
		return nil, mapPlanError(err)
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		return nil, mapPlanError(err)
	}
	uc.cache.Invalidate(ctx)

	uc.logger.Infow("plan created", "plan_sid", p.SID(), "name", p.Name())
	return dto.ToPlanDTO(p), nil
}
