// Package quota enforces the per-plan interview allowance.
package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// maxConsumeAttempts bounds retries when the guarded increment loses to a
// concurrent plan change.
const maxConsumeAttempts = 3

// DenialRecorder counts refusals by reason.
type DenialRecorder interface {
	QuotaDenied(reason string)
}

type nopRecorder struct{}

func (nopRecorder) QuotaDenied(string) {}

// Decision describes an account's standing against its plan. Remaining is
// -1 when the plan is unlimited. Allowed reports whether one more interview
// fits.
type Decision struct {
	Plan      *plan.Plan
	Used      int
	Limit     int
	Remaining int
	Unlimited bool
	Allowed   bool
}

type Service struct {
	accountRepo account.Repository
	planRepo    plan.Repository
	recorder    DenialRecorder
	logger      logger.Interface
}

func NewService(accountRepo account.Repository, planRepo plan.Repository, recorder DenialRecorder, logger logger.Interface) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		accountRepo: accountRepo,
		planRepo:    planRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// Check reports the account's usage and whether one more interview would
// be admitted, without consuming anything. An exhausted allowance is a
// Decision with Allowed false; only a missing account or plan is an error.
// Check is a read, so it never counts toward denial metrics.
func (s *Service) Check(ctx context.Context, accountID uint) (*Decision, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, s.accountError(err)
	}
	p, err := s.planOf(ctx, acc)
	if err != nil {
		return nil, err
	}
	return decision(p, acc.InterviewsUsed()), nil
}

// Consume atomically takes one unit of quota. Callers run it in the same
// transaction as the insert it pays for, so a failed insert gives the unit
// back. The account row is locked before the plan is read, so a retry after
// a lost race sees the committed plan rather than the transaction's first
// snapshot. The returned decision reflects usage after the increment.
func (s *Service) Consume(ctx context.Context, accountID uint) (*Decision, error) {
	for attempt := 1; ; attempt++ {
		acc, err := s.accountRepo.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			return nil, s.denyAppError(s.accountError(err))
		}
		p, err := s.planOf(ctx, acc)
		if err != nil {
			return nil, s.denyAppError(err)
		}

		quota := p.InterviewQuota()
		if !quota.Allows(acc.InterviewsUsed()) {
			return nil, s.deny(apperrors.NewQuotaExceededError(p.Name(), acc.InterviewsUsed(), quota.Int()))
		}

		ok, err := s.accountRepo.IncrementUsage(ctx, acc.ID(), p.ID(), quota.Int())
		if err != nil {
			s.logger.Errorw("failed to increment usage", "error", err, "account_id", accountID)
			return nil, fmt.Errorf("failed to consume quota: %w", err)
		}
		if ok {
			return decision(p, acc.InterviewsUsed()+1), nil
		}

		if attempt >= maxConsumeAttempts {
			s.logger.Warnw("quota increment kept losing races", "account_id", accountID, "plan_id", p.ID())
			return nil, s.deny(apperrors.NewQuotaExceededError(p.Name(), acc.InterviewsUsed(), quota.Int()))
		}
		s.logger.Debugw("quota increment lost race, retrying", "account_id", accountID, "attempt", attempt)
	}
}

func (s *Service) accountError(err error) error {
	if errors.Is(err, account.ErrAccountNotFound) {
		return apperrors.NewAccountNotFoundError()
	}
	return fmt.Errorf("failed to load account: %w", err)
}

func (s *Service) planOf(ctx context.Context, acc *account.Account) (*plan.Plan, error) {
	if !acc.HasPlan() {
		return nil, apperrors.NewNoActivePlanError()
	}
	p, err := s.planRepo.GetByID(ctx, *acc.PlanID())
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, apperrors.NewNoActivePlanError()
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return p, nil
}

// denyAppError records err when it is a refusal rather than a failure.
func (s *Service) denyAppError(err error) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return s.deny(appErr)
	}
	return err
}

func (s *Service) deny(err *apperrors.AppError) error {
	s.recorder.QuotaDenied(string(err.Reason))
	return err
}

func decision(p *plan.Plan, used int) *Decision {
	quota := p.InterviewQuota()
	return &Decision{
		Plan:      p,
		Used:      used,
		Limit:     quota.Int(),
		Remaining: quota.Remaining(used),
		Unlimited: quota.IsUnlimited(),
		Allowed:   quota.Allows(used),
	}
}
