package dto

import (
	accountDTO "github.com/talento-hq/talento/internal/application/account/dto"
	planDTO "github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
)

// AdminDashboardResponse is the admin console landing snapshot.
type AdminDashboardResponse struct {
	TotalUsers          int64                    `json:"totalUsers"`
	TotalInterviews     int64                    `json:"totalInterviews"`
	CompletedInterviews int64                    `json:"completedInterviews"`
	PendingPayments     int64                    `json:"pendingPayments"`
	TotalRevenue        float64                  `json:"totalRevenue"`
	Currency            string                   `json:"currency"`
	RecentUsers         []*accountDTO.AccountDTO `json:"recentUsers"`
}

// AdminAccountDTO is a member row in the admin console.
type AdminAccountDTO struct {
	*accountDTO.AccountDTO
	Plan  *planDTO.PlanDTO    `json:"plan"`
	Usage accountDTO.UsageDTO `json:"usage"`
}

type AccountListResponse struct {
	Items      []*AdminAccountDTO `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// ToAdminAccountDTO joins an account with its plan; p may be nil.
func ToAdminAccountDTO(a *account.Account, p *plan.Plan) *AdminAccountDTO {
	return &AdminAccountDTO{
		AccountDTO: accountDTO.ToAccountDTO(a),
		Plan:       planDTO.ToPlanDTO(p),
		Usage:      accountDTO.ToUsageDTO(a, p),
	}
}
