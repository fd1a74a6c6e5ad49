package usecases

import (
	"context"
	"errors"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const manualSubmittedMessage = "Payment submitted for review. Admin will approve within 24 hours."

type SubmitManualPaymentCommand struct {
	AccountID   uint
	PlanSID     string
	EvidenceRef string
	Note        string
}

type SubmitManualPaymentUseCase struct {
	paymentRepo payment.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewSubmitManualPaymentUseCase(
	paymentRepo payment.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *SubmitManualPaymentUseCase {
	return &SubmitManualPaymentUseCase{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// Execute records a pending manual payment. The account is untouched until
// an admin approves it.
func (uc *SubmitManualPaymentUseCase) Execute(ctx context.Context, cmd SubmitManualPaymentCommand) (*dto.ManualSubmittedDTO, error) {
	if cmd.PlanSID == "" {
		return nil, apperrors.NewValidationError("Plan is required")
	}
	if _, err := loadAccount(ctx, uc.accountRepo, cmd.AccountID); err != nil {
		return nil, err
	}
	p, err := loadPlan(ctx, uc.planRepo, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if err := checkPurchasable(p); err != nil {
		return nil, err
	}

	pay, err := payment.NewManualPayment(cmd.AccountID, p.ID(), p.Price(), cmd.EvidenceRef, cmd.Note)
	if err != nil {
		if errors.Is(err, payment.ErrEvidenceRequired) {
			return nil, apperrors.NewValidationError("Payment proof is required")
		}
		return nil, err
	}
	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		uc.logger.Errorw("failed to create manual payment", "error", err, "account_id", cmd.AccountID)
		return nil, err
	}

	uc.logger.Infow("manual payment submitted", "payment_sid", pay.SID(), "account_id", cmd.AccountID, "plan", p.Name())
	return &dto.ManualSubmittedDTO{
		Message: manualSubmittedMessage,
		Payment: dto.ToPaymentDTO(pay, p),
	}, nil
}
