package dto

import (
	"time"

	planDTO "github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
)

type AccountDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"companyName"`
	Role          string    `json:"role"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UsageDTO describes quota consumption; Remaining is -1 when unlimited.
type UsageDTO struct {
	InterviewsUsed    int  `json:"interviewsUsed"`
	InterviewLimit    int  `json:"interviewLimit"`
	Remaining         int  `json:"remaining"`
	Unlimited         bool `json:"unlimited"`
	CanStartInterview bool `json:"canStartInterview"`
}

type ProfileDTO struct {
	User  *AccountDTO      `json:"user"`
	Plan  *planDTO.PlanDTO `json:"plan"`
	Usage UsageDTO         `json:"usage"`
}

type AuthDTO struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *AccountDTO `json:"user"`
}

func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:            a.SID(),
		Email:         a.Email(),
		Name:          a.Name(),
		CompanyName:   a.CompanyName(),
		Role:          a.Role().String(),
		PaymentStatus: a.PaymentStatus().String(),
		CreatedAt:     a.CreatedAt(),
	}
}

// ToUsageDTO reports usage against p; without a plan the limit is zero.
func ToUsageDTO(a *account.Account, p *plan.Plan) UsageDTO {
	usage := UsageDTO{InterviewsUsed: a.InterviewsUsed()}
	if p == nil {
		return usage
	}
	quota := p.InterviewQuota()
	usage.InterviewLimit = quota.Int()
	usage.Unlimited = quota.IsUnlimited()
	usage.Remaining = quota.Remaining(a.InterviewsUsed())
	usage.CanStartInterview = quota.Allows(a.InterviewsUsed())
	return usage
}

func ToProfileDTO(a *account.Account, p *plan.Plan) *ProfileDTO {
	return &ProfileDTO{
		User:  ToAccountDTO(a),
		Plan:  planDTO.ToPlanDTO(p),
		Usage: ToUsageDTO(a, p),
	}
}
