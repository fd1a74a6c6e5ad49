package usecases

import (
	"context"
	"errors"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type ApprovePaymentCommand struct {
	PaymentSID string
	AdminID    uint
}

type ApprovePaymentUseCase struct {
	paymentRepo payment.Repository
	planRepo    plan.Repository
	workflow    *Workflow
	logger      logger.Interface
}

func NewApprovePaymentUseCase(
	paymentRepo payment.Repository,
	planRepo plan.Repository,
	workflow *Workflow,
	logger logger.Interface,
) *ApprovePaymentUseCase {
	return &ApprovePaymentUseCase{
		paymentRepo: paymentRepo,
		planRepo:    planRepo,
		workflow:    workflow,
		logger:      logger,
	}
}

func (uc *ApprovePaymentUseCase) Execute(ctx context.Context, cmd ApprovePaymentCommand) (*dto.PaymentDTO, error) {
	p, err := loadPayment(ctx, uc.paymentRepo, cmd.PaymentSID)
	if err != nil {
		return nil, err
	}
	if err := p.Approve(cmd.AdminID); err != nil {
		return nil, mapDecisionError(p, err)
	}

	if err := uc.workflow.Complete(ctx, p); err != nil {
		if errors.Is(err, errLostRace) {
			uc.logger.Infow("approval lost race", "payment_sid", p.SID(), "admin_id", cmd.AdminID)
			return nil, uc.workflow.alreadyProcessed(ctx, p)
		}
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to approve payment", "error", err, "payment_sid", p.SID())
		}
		return nil, err
	}

	return dto.ToPaymentDTO(p, planForResponse(ctx, uc.planRepo, p, uc.logger)), nil
}

type RejectPaymentCommand struct {
	PaymentSID string
	AdminID    uint
	Reason     string
}

type RejectPaymentUseCase struct {
	paymentRepo payment.Repository
	planRepo    plan.Repository
	workflow    *Workflow
	logger      logger.Interface
}

func NewRejectPaymentUseCase(
	paymentRepo payment.Repository,
	planRepo plan.Repository,
	workflow *Workflow,
	logger logger.Interface,
) *RejectPaymentUseCase {
	return &RejectPaymentUseCase{
		paymentRepo: paymentRepo,
		planRepo:    planRepo,
		workflow:    workflow,
		logger:      logger,
	}
}

func (uc *RejectPaymentUseCase) Execute(ctx context.Context, cmd RejectPaymentCommand) (*dto.PaymentDTO, error) {
	p, err := loadPayment(ctx, uc.paymentRepo, cmd.PaymentSID)
	if err != nil {
		return nil, err
	}
	if err := p.Reject(cmd.Reason); err != nil {
		return nil, mapDecisionError(p, err)
	}

	if err := uc.workflow.Fail(ctx, p); err != nil {
		if errors.Is(err, errLostRace) {
			uc.logger.Infow("rejection lost race", "payment_sid", p.SID(), "admin_id", cmd.AdminID)
			return nil, uc.workflow.alreadyProcessed(ctx, p)
		}
		uc.logger.Errorw("failed to reject payment", "error", err, "payment_sid", p.SID())
		return nil, err
	}

	return dto.ToPaymentDTO(p, planForResponse(ctx, uc.planRepo, p, uc.logger)), nil
}

func mapDecisionError(p *payment.Payment, err error) error {
	switch {
	case errors.Is(err, payment.ErrAlreadyProcessed):
		return apperrors.NewAlreadyProcessedError(p.Status().String())
	case errors.Is(err, payment.ErrNotManualPayment):
		return apperrors.NewBadRequestError("Only manual payments can be approved or rejected")
	}
	return err
}
