package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// adminAssignmentEvidence marks payments created by a direct plan assignment.
const adminAssignmentEvidence = "admin-assignment"

type AssignPlanCommand struct {
	AdminID    uint
	AccountSID string
	PlanSID    string
	Note       string
}

// AssignPlanUseCase moves an account to a plan on an admin's behalf. The
// change is recorded as a manual payment that is created and approved in
// one transaction, so the account update still goes through the workflow.
type AssignPlanUseCase struct {
	paymentRepo payment.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	workflow    *Workflow
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewAssignPlanUseCase(
	paymentRepo payment.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	workflow *Workflow,
	txMgr db.Transactor,
	logger logger.Interface,
) *AssignPlanUseCase {
	return &AssignPlanUseCase{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		workflow:    workflow,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AssignPlanUseCase) Execute(ctx context.Context, cmd AssignPlanCommand) (*dto.PaymentDTO, error) {
	acc, err := uc.accountRepo.GetBySID(ctx, cmd.AccountSID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.NewAccountNotFoundError()
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	p, err := loadPlan(ctx, uc.planRepo, cmd.PlanSID)
	if err != nil {
		return nil, err
	}

	pay, err := payment.NewManualPayment(acc.ID(), p.ID(), p.Price(), adminAssignmentEvidence, cmd.Note)
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.paymentRepo.Create(txCtx, pay); err != nil {
			return err
		}
		if err := pay.Approve(cmd.AdminID); err != nil {
			return err
		}
		return uc.workflow.applyCompletion(txCtx, pay)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign plan",
			"error", err,
			"account_sid", cmd.AccountSID,
			"plan_sid", cmd.PlanSID,
		)
		return nil, err
	}
	uc.workflow.completed(pay)

	uc.logger.Infow("plan assigned by admin",
		"account_sid", acc.SID(),
		"plan", p.Name(),
		"admin_id", cmd.AdminID,
		"payment_sid", pay.SID(),
	)
	return dto.ToPaymentDTO(pay, p), nil
}
