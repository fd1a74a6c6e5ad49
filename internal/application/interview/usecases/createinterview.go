package usecases

import (
	"context"
	"time"

	"github.com/talento-hq/talento/internal/application/interview/dto"
	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type CreateInterviewCommand struct {
	AccountID uint
	JobTitle  string
	ExpiresAt *time.Time
}

type CreateInterviewUseCase struct {
	interviewRepo interview.Repository
	quota         QuotaConsumer
	txMgr         db.Transactor
	clientOrigin  string
	logger        logger.Interface
}

func NewCreateInterviewUseCase(
	interviewRepo interview.Repository,
	quota QuotaConsumer,
	txMgr db.Transactor,
	clientOrigin string,
	logger logger.Interface,
) *CreateInterviewUseCase {
	return &CreateInterviewUseCase{
		interviewRepo: interviewRepo,
		quota:         quota,
		txMgr:         txMgr,
		clientOrigin:  clientOrigin,
		logger:        logger,
	}
}

// Execute consumes one unit of quota and inserts the interview in the same
// transaction; if the insert fails the unit is returned.
func (uc *CreateInterviewUseCase) Execute(ctx context.Context, cmd CreateInterviewCommand) (*dto.CreatedDTO, error) {
	if cmd.ExpiresAt != nil && !cmd.ExpiresAt.After(biztime.NowUTC()) {
		return nil, apperrors.NewValidationError("expiresAt must be in the future")
	}

	i, err := interview.NewInterview(cmd.AccountID, cmd.JobTitle, cmd.ExpiresAt)
	if err != nil {
		return nil, mapInterviewError(err)
	}

	var remaining int
	var unlimited bool
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		decision, err := uc.quota.Consume(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		remaining, unlimited = decision.Remaining, decision.Unlimited
		return uc.interviewRepo.Create(txCtx, i)
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to create interview", "error", err, "account_id", cmd.AccountID)
		}
		return nil, err
	}

	uc.logger.Infow("interview created",
		"interview_sid", i.SID(),
		"account_id", cmd.AccountID,
		"remaining", remaining,
	)
	return &dto.CreatedDTO{
		Interview:      dto.ToInterviewDTO(i, uc.clientOrigin),
		RemainingQuota: remaining,
		UnlimitedQuota: unlimited,
	}, nil
}
