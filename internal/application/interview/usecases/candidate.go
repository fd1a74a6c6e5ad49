package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/interview/dto"
	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// GetByLinkUseCase serves the candidate landing page.
type GetByLinkUseCase struct {
	interviewRepo interview.Repository
	logger        logger.Interface
}

func NewGetByLinkUseCase(interviewRepo interview.Repository, logger logger.Interface) *GetByLinkUseCase {
	return &GetByLinkUseCase{interviewRepo: interviewRepo, logger: logger}
}

func (uc *GetByLinkUseCase) Execute(ctx context.Context, link string) (*dto.CandidateViewDTO, error) {
	i, err := uc.interviewRepo.GetByLink(ctx, link)
	if err != nil {
		return nil, mapInterviewError(err)
	}
	if err := checkOpen(ctx, uc.interviewRepo, i, uc.logger); err != nil {
		return nil, err
	}
	return dto.ToCandidateViewDTO(i), nil
}

type StartInterviewCommand struct {
	Link           string
	CandidateName  string
	CandidateEmail string
}

type StartInterviewUseCase struct {
	interviewRepo interview.Repository
	analyzer      interview.Analyzer
	logger        logger.Interface
}

func NewStartInterviewUseCase(interviewRepo interview.Repository, analyzer interview.Analyzer, logger logger.Interface) *StartInterviewUseCase {
	return &StartInterviewUseCase{
		interviewRepo: interviewRepo,
		analyzer:      analyzer,
		logger:        logger,
	}
}

func (uc *StartInterviewUseCase) Execute(ctx context.Context, cmd StartInterviewCommand) (*dto.StartedDTO, error) {
	i, err := uc.interviewRepo.GetByLink(ctx, cmd.Link)
	if err != nil {
		return nil, mapInterviewError(err)
	}
	if err := checkOpen(ctx, uc.interviewRepo, i, uc.logger); err != nil {
		return nil, err
	}

	questions, err := uc.analyzer.OpeningQuestions(ctx, i.JobTitle())
	if err != nil {
		uc.logger.Errorw("failed to generate opening questions", "error", err, "interview_sid", i.SID())
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	if err := i.Start(cmd.CandidateName, cmd.CandidateEmail, questions); err != nil {
		return nil, mapInterviewError(err)
	}
	if err := uc.interviewRepo.Update(ctx, i); err != nil {
		uc.logger.Errorw("failed to save started interview", "error", err, "interview_sid", i.SID())
		return nil, err
	}

	uc.logger.Infow("interview started", "interview_sid", i.SID())
	return &dto.StartedDTO{Questions: questions}, nil
}

type SubmitInterviewCommand struct {
	Link    string
	Answers []interview.Answer
}

type SubmitInterviewUseCase struct {
	interviewRepo interview.Repository
	analyzer      interview.Analyzer
	logger        logger.Interface
}

func NewSubmitInterviewUseCase(interviewRepo interview.Repository, analyzer interview.Analyzer, logger logger.Interface) *SubmitInterviewUseCase {
	return &SubmitInterviewUseCase{
		interviewRepo: interviewRepo,
		analyzer:      analyzer,
		logger:        logger,
	}
}

func (uc *SubmitInterviewUseCase) Execute(ctx context.Context, cmd SubmitInterviewCommand) (*dto.CandidateViewDTO, error) {
	if len(cmd.Answers) == 0 {
		return nil, mapInterviewError(interview.ErrAnswersRequired)
	}

	i, err := uc.interviewRepo.GetByLink(ctx, cmd.Link)
	if err != nil {
		return nil, mapInterviewError(err)
	}
	if err := i.ValidateSubmission(cmd.Answers); err != nil {
		if errors.Is(err, interview.ErrInterviewExpired) {
			persistExpiry(ctx, uc.interviewRepo, i, uc.logger)
		}
		return nil, mapInterviewError(err)
	}

	analysis, err := uc.analyzer.Analyze(ctx, i.JobTitle(), cmd.Answers)
	if err != nil {
		uc.logger.Errorw("failed to analyze interview", "error", err, "interview_sid", i.SID())
		return nil, fmt.Errorf("failed to analyze answers: %w", err)
	}

	if err := i.Complete(cmd.Answers, analysis); err != nil {
		return nil, mapInterviewError(err)
	}
	if err := uc.interviewRepo.Update(ctx, i); err != nil {
		uc.logger.Errorw("failed to save completed interview", "error", err, "interview_sid", i.SID())
		return nil, err
	}

	uc.logger.Infow("interview submitted", "interview_sid", i.SID(), "score", analysis.ConfidenceScore)
	return dto.ToCandidateViewDTO(i), nil
}

func checkOpen(ctx context.Context, repo interview.Repository, i *interview.Interview, log logger.Interface) error {
	err := i.CheckOpen()
	if errors.Is(err, interview.ErrInterviewExpired) {
		persistExpiry(ctx, repo, i, log)
	}
	if err != nil {
		return mapInterviewError(err)
	}
	return nil
}

// persistExpiry stores a status flipped to expired by CheckOpen. Failure only
// delays the flip until the next read.
func persistExpiry(ctx context.Context, repo interview.Repository, i *interview.Interview, log logger.Interface) {
	if i.Status() != interview.StatusExpired {
		return
	}
	if err := repo.Update(ctx, i); err != nil {
		log.Warnw("failed to persist interview expiry", "error", err, "interview_sid", i.SID())
	}
}
