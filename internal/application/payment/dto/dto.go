package dto

import (
	"time"

	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/setting"
)

type PaymentDTO struct {
	ID              string     `json:"id"`
	PlanID          string     `json:"planId,omitempty"`
	PlanName        string     `json:"planName,omitempty"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	Method          string     `json:"paymentMethod"`
	Status          string     `json:"status"`
	EvidenceRef     string     `json:"paymentProof,omitempty"`
	Note            string     `json:"notes,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// PendingPaymentDTO adds the submitter for the admin review queue.
type PendingPaymentDTO struct {
	PaymentDTO
	AccountID    string `json:"userId"`
	AccountEmail string `json:"userEmail"`
	AccountName  string `json:"userName"`
	CompanyName  string `json:"companyName"`
}

type CheckoutDTO struct {
	SessionID   string      `json:"sessionId"`
	CheckoutURL string      `json:"checkoutUrl"`
	Payment     *PaymentDTO `json:"payment"`
}

type ManualSubmittedDTO struct {
	Message string      `json:"message"`
	Payment *PaymentDTO `json:"payment"`
}

type InstructionsDTO struct {
	InstructionsHTML string                  `json:"instructionsHtml"`
	PayoutAccounts   []setting.PayoutAccount `json:"payoutAccounts"`
}

// ToPaymentDTO converts p. pl may be nil when the plan is gone.
func ToPaymentDTO(p *payment.Payment, pl *plan.Plan) *PaymentDTO {
	out := &PaymentDTO{
		ID:              p.SID(),
		Amount:          p.Amount().Major(),
		Currency:        p.Amount().Currency(),
		Method:          p.Method().String(),
		Status:          p.Status().String(),
		EvidenceRef:     p.EvidenceRef(),
		Note:            p.Note(),
		RejectionReason: p.RejectionReason(),
		ApprovedAt:      p.ApprovedAt(),
		CreatedAt:       p.CreatedAt(),
	}
	if pl != nil {
		out.PlanID = pl.SID()
		out.PlanName = pl.Name()
	}
	return out
}
