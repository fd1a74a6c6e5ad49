package usecases

import (
	"context"
	"fmt"

	dto "github.com/talento-hq/talento/internal/application/admin/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

type ListAccountsQuery struct {
	Page     int
	PageSize int
}

// ListAccountsUseCase lists members with their plan and usage.
type ListAccountsUseCase struct {
	accountRepo account.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, planRepo plan.Repository, log logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		planRepo:    planRepo,
		logger:      log,
	}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context, query ListAccountsQuery) (*dto.AccountListResponse, error) {
	page := utils.ValidatePagination(query.Page, query.PageSize)

	accounts, total, err := uc.accountRepo.List(ctx, account.ListFilter{
		Role:     authorization.RoleMember,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	// The catalog is small; one query beats a lookup per row.
	plans, err := uc.planRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	byID := make(map[uint]*plan.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID()] = p
	}

	items := make([]*dto.AdminAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		var p *plan.Plan
		if a.HasPlan() {
			p = byID[*a.PlanID()]
		}
		items = append(items, dto.ToAdminAccountDTO(a, p))
	}

	return &dto.AccountListResponse{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: utils.TotalPages(total, page.PageSize),
	}, nil
}
