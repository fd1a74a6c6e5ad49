package dto

import (
	"time"

	"github.com/talento-hq/talento/internal/domain/plan"
)

type PlanDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	InterviewLimit int       `json:"interviewLimit"`
	Unlimited      bool      `json:"unlimited"`
	Features       []string  `json:"features"`
	IsActive       bool      `json:"isActive"`
	IsCustom       bool      `json:"isCustom"`
	IsRecommended  bool      `json:"isRecommended"`
	DisplayOrder   int       `json:"displayOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:             p.SID(),
		Name:           p.Name(),
		Price:          p.Price().Major(),
		Currency:       p.Price().Currency(),
		InterviewLimit: p.InterviewQuota().Int(),
		Unlimited:      p.InterviewQuota().IsUnlimited(),
		Features:       p.Features(),
		IsActive:       p.IsActive(),
		IsCustom:       p.IsCustom(),
		IsRecommended:  p.IsRecommended(),
		DisplayOrder:   p.DisplayOrder(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ToPlanDTOList(plans []*plan.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}
