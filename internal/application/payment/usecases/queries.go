package usecases

import (
	"context"
	"fmt"

	"github.com/talento-hq/talento/internal/application/payment/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/setting"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/services/markdown"
)

type GetPaymentUseCase struct {
	paymentRepo payment.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewGetPaymentUseCase(paymentRepo payment.Repository, planRepo plan.Repository, logger logger.Interface) *GetPaymentUseCase {
	return &GetPaymentUseCase{paymentRepo: paymentRepo, planRepo: planRepo, logger: logger}
}

// Execute returns one of the caller's payments. Payments of other accounts
// are reported as not found.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, accountID uint, paymentSID string) (*dto.PaymentDTO, error) {
	p, err := loadPayment(ctx, uc.paymentRepo, paymentSID)
	if err != nil {
		return nil, err
	}
	if p.AccountID() != accountID {
		uc.logger.Warnw("payment requested by non-owner", "payment_sid", paymentSID, "account_id", accountID)
		return nil, apperrors.NewNotFoundError("Payment not found")
	}
	return dto.ToPaymentDTO(p, planForResponse(ctx, uc.planRepo, p, uc.logger)), nil
}

type ListPaymentHistoryUseCase struct {
	paymentRepo payment.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewListPaymentHistoryUseCase(paymentRepo payment.Repository, planRepo plan.Repository, logger logger.Interface) *ListPaymentHistoryUseCase {
	return &ListPaymentHistoryUseCase{paymentRepo: paymentRepo, planRepo: planRepo, logger: logger}
}

// Execute lists the caller's payments, newest first.
func (uc *ListPaymentHistoryUseCase) Execute(ctx context.Context, accountID uint) ([]*dto.PaymentDTO, error) {
	payments, err := uc.paymentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	plans, err := plansByID(ctx, uc.planRepo, payments)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentDTO(p, plans[p.PlanID()]))
	}
	return out, nil
}

type ListPendingPaymentsUseCase struct {
	paymentRepo payment.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewListPendingPaymentsUseCase(
	paymentRepo payment.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *ListPendingPaymentsUseCase {
	return &ListPendingPaymentsUseCase{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// Execute returns manual payments awaiting an admin decision.
func (uc *ListPendingPaymentsUseCase) Execute(ctx context.Context) ([]*dto.PendingPaymentDTO, error) {
	payments, err := uc.paymentRepo.ListPending(ctx, vo.PaymentMethodManual)
	if err != nil {
		uc.logger.Errorw("failed to list pending payments", "error", err)
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	plans, err := plansByID(ctx, uc.planRepo, payments)
	if err != nil {
		return nil, err
	}

	accounts := make(map[uint]*account.Account)
	out := make([]*dto.PendingPaymentDTO, 0, len(payments))
	for _, p := range payments {
		acc, ok := accounts[p.AccountID()]
		if !ok {
			acc, err = uc.accountRepo.GetByID(ctx, p.AccountID())
			if err != nil {
				uc.logger.Warnw("pending payment without account", "payment_sid", p.SID(), "error", err)
				continue
			}
			accounts[p.AccountID()] = acc
		}
		out = append(out, &dto.PendingPaymentDTO{
			PaymentDTO:   *dto.ToPaymentDTO(p, plans[p.PlanID()]),
			AccountID:    acc.SID(),
			AccountEmail: acc.Email(),
			AccountName:  acc.Name(),
			CompanyName:  acc.CompanyName(),
		})
	}
	return out, nil
}

type GetManualInstructionsUseCase struct {
	settingsRepo setting.Repository
	renderer     markdown.Renderer
	logger       logger.Interface
}

func NewGetManualInstructionsUseCase(settingsRepo setting.Repository, renderer markdown.Renderer, logger logger.Interface) *GetManualInstructionsUseCase {
	return &GetManualInstructionsUseCase{settingsRepo: settingsRepo, renderer: renderer, logger: logger}
}

func (uc *GetManualInstructionsUseCase) Execute(ctx context.Context) (*dto.InstructionsDTO, error) {
	s, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, err
	}
	payments := s.Payments()

	html, err := uc.renderer.Render(payments.ManualPaymentInstructions)
	if err != nil {
		uc.logger.Errorw("failed to render payment instructions", "error", err)
		return nil, err
	}

	accounts := payments.PayoutAccounts
	if accounts == nil {
		accounts = []setting.PayoutAccount{}
	}
	return &dto.InstructionsDTO{
		InstructionsHTML: html,
		PayoutAccounts:   accounts,
	}, nil
}

func plansByID(ctx context.Context, repo plan.Repository, payments []*payment.Payment) (map[uint]*plan.Plan, error) {
	ids := make([]uint, 0, len(payments))
	seen := make(map[uint]struct{}, len(payments))
	for _, p := range payments {
		if _, ok := seen[p.PlanID()]; !ok {
			seen[p.PlanID()] = struct{}{}
			ids = append(ids, p.PlanID())
		}
	}

	out := make(map[uint]*plan.Plan, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	plans, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	for _, p := range plans {
		out[p.ID()] = p
	}
	return out, nil
}
