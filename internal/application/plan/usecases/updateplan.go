package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// UpdatePlanCommand applies only the fields that are set.
type UpdatePlanCommand struct {
	PlanSID        string
	Name           *string
	Price          *float64
	InterviewLimit *int
	Features       []string
	IsActive       *bool
	IsCustom       *bool
	IsRecommended  *bool
	DisplayOrder   *int
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	cache    PublicPlanCache
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, cache PublicPlanCache, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		cache:    cacheOrNop(cache),
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, mapPlanError(err)
	}

	if cmd.Name != nil {
		if err := p.Rename(*cmd.Name); err != nil {
			return nil, mapPlanError(err)
		}
	}
	if cmd.Price != nil {
		if err := p.UpdatePrice(valueobjects.NewMoneyFromMajor(*cmd.Price, p.Price().Currency())); err != nil {
			return nil, mapPlanError(err)
		}
	}
	if cmd.InterviewLimit != nil {
		quota, err := plan.NewInterviewQuota(*cmd.InterviewLimit)
		if err != nil {
			return nil, mapPlanError(err)
		}
		if err := p.UpdateQuota(quota); err != nil {
			return nil, mapPlanError(err)
		}
	}
	if cmd.Features != nil {
		p.UpdateFeatures(cmd.Features)
	}
	if cmd.IsActive != nil {
		p.SetActive(*cmd.IsActive)
	}
	if cmd.IsCustom != nil {
		p.SetCustom(*cmd.IsCustom)
	}
	if cmd.IsRecommended != nil {
		p.SetRecommended(*cmd.IsRecommended)
	}
	if cmd.DisplayOrder != nil {
		p.SetDisplayOrder(*cmd.DisplayOrder)
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		return nil, mapPlanError(err)
	}
	uc.cache.Invalidate(ctx)

	uc.logger.Infow("plan updated", "plan_sid", p.SID())
	return dto.ToPlanDTO(p), nil
}
