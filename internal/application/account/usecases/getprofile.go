package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/account/dto"
	"github.com/talento-hq/talento/internal/application/quota"
	"github.com/talento-hq/talento/internal/domain/account"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// QuotaChecker reports an account's standing against its plan without
// consuming anything.
type QuotaChecker interface {
	Check(ctx context.Context, accountID uint) (*quota.Decision, error)
}

type GetProfileUseCase struct {
	accountRepo account.Repository
	quota       QuotaChecker
	logger      logger.Interface
}

func NewGetProfileUseCase(
	accountRepo account.Repository,
	quota QuotaChecker,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		accountRepo: accountRepo,
		quota:       quota,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, accountID uint) (*dto.ProfileDTO, error) {
	acc, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.NewAccountNotFoundError()
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	profile, err := BuildProfile(ctx, uc.quota, acc)
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to check account quota", "error", err, "account_id", accountID)
		}
		return nil, err
	}
	return profile, nil
}

// BuildProfile assembles the profile view. Usage comes from the quota gate,
// so the remaining count shown is the one interview creation enforces. An
// account without a plan gets a profile with zero usage limits.
func BuildProfile(ctx context.Context, checker QuotaChecker, acc *account.Account) (*dto.ProfileDTO, error) {
	d, err := checker.Check(ctx, acc.ID())
	if err != nil {
		if apperrors.HasReason(err, apperrors.ReasonNoActivePlan) {
			return dto.ToProfileDTO(acc, nil), nil
		}
		return nil, err
	}

	profile := dto.ToProfileDTO(acc, d.Plan)
	profile.Usage = dto.UsageDTO{
		InterviewsUsed:    d.Used,
		InterviewLimit:    d.Limit,
		Remaining:         d.Remaining,
		Unlimited:         d.Unlimited,
		CanStartInterview: d.Allowed,
	}
	return profile, nil
}
