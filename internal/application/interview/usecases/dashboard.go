package usecases

import (
	"context"
	"errors"
	"fmt"

	accountDTO "github.com/talento-hq/talento/internal/application/account/dto"
	accountUsecases "github.com/talento-hq/talento/internal/application/account/usecases"
	"github.com/talento-hq/talento/internal/application/interview/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/interview"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const recentInterviewLimit = 5

type MemberDashboardDTO struct {
	Profile          *accountDTO.ProfileDTO `json:"profile"`
	Stats            dto.StatsDTO           `json:"stats"`
	RecentInterviews []*dto.InterviewDTO    `json:"recentInterviews"`
}

type GetMemberDashboardUseCase struct {
	accountRepo   account.Repository
	quota         accountUsecases.QuotaChecker
	interviewRepo interview.Repository
	clientOrigin  string
	logger        logger.Interface
}

func NewGetMemberDashboardUseCase(
	accountRepo account.Repository,
	quota accountUsecases.QuotaChecker,
	interviewRepo interview.Repository,
	clientOrigin string,
	logger logger.Interface,
) *GetMemberDashboardUseCase {
	return &GetMemberDashboardUseCase{
		accountRepo:   accountRepo,
		quota:         quota,
		interviewRepo: interviewRepo,
		clientOrigin:  clientOrigin,
		logger:        logger,
	}
}

func (uc *GetMemberDashboardUseCase) Execute(ctx context.Context, accountID uint) (*MemberDashboardDTO, error) {
	acc, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.NewAccountNotFoundError()
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	profile, err := accountUsecases.BuildProfile(ctx, uc.quota, acc)
	if err != nil {
		return nil, err
	}

	stats, err := uc.interviewRepo.StatsByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to count interviews", "error", err, "account_id", accountID)
		return nil, err
	}

	recent, err := uc.interviewRepo.ListByAccount(ctx, accountID, recentInterviewLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent interviews", "error", err, "account_id", accountID)
		return nil, err
	}

	return &MemberDashboardDTO{
		Profile:          profile,
		Stats:            dto.ToStatsDTO(stats),
		RecentInterviews: dto.ToInterviewDTOList(recent, uc.clientOrigin),
	}, nil
}
