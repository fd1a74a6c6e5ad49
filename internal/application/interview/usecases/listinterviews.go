package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/interview/dto"
	"github.com/talento-hq/talento/internal/domain/interview"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type ListInterviewsUseCase struct {
	interviewRepo interview.Repository
	clientOrigin  string
	logger        logger.Interface
}

func NewListInterviewsUseCase(interviewRepo interview.Repository, clientOrigin string, logger logger.Interface) *ListInterviewsUseCase {
	return &ListInterviewsUseCase{
		interviewRepo: interviewRepo,
		clientOrigin:  clientOrigin,
		logger:        logger,
	}
}

// Execute lists the account's interviews, newest first.
func (uc *ListInterviewsUseCase) Execute(ctx context.Context, accountID uint) ([]*dto.InterviewDTO, error) {
	items, err := uc.interviewRepo.ListByAccount(ctx, accountID, 0)
	if err != nil {
		uc.logger.Errorw("failed to list interviews", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return dto.ToInterviewDTOList(items, uc.clientOrigin), nil
}

type GetReportUseCase struct {
	interviewRepo interview.Repository
	logger        logger.Interface
}

func NewGetReportUseCase(interviewRepo interview.Repository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{interviewRepo: interviewRepo, logger: logger}
}

// Execute returns the full report. Interviews owned by someone else are
// reported as not found.
func (uc *GetReportUseCase) Execute(ctx context.Context, accountID uint, interviewSID string) (*dto.ReportDTO, error) {
	i, err := uc.interviewRepo.GetBySID(ctx, interviewSID)
	if err != nil {
		if errors.Is(err, interview.ErrInterviewNotFound) {
			return nil, mapInterviewError(err)
		}
		return nil, fmt.Errorf("failed to load interview: %w", err)
	}
	if !i.IsOwnedBy(accountID) {
		uc.logger.Warnw("interview report requested by non-owner", "interview_sid", interviewSID, "account_id", accountID)
		return nil, apperrors.NewNotFoundError("Interview not found")
	}
	return dto.ToReportDTO(i), nil
}
