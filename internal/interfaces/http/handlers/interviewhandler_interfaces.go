package handlers

import (
	"context"

	"github.com/talento-hq/talento/internal/application/interview/dto"
	"github.com/talento-hq/talento/internal/application/interview/usecases"
)

type createInterviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateInterviewCommand) (*dto.CreatedDTO, error)
}

type listInterviewsUseCase interface {
	Execute(ctx context.Context, accountID uint) ([]*dto.InterviewDTO, error)
}

type getReportUseCase interface {
	Execute(ctx context.Context, accountID uint, interviewSID string) (*dto.ReportDTO, error)
}

type getMemberDashboardUseCase interface {
	Execute(ctx context.Context, accountID uint) (*usecases.MemberDashboardDTO, error)
}

type getByLinkUseCase interface {
	Execute(ctx context.Context, link string) (*dto.CandidateViewDTO, error)
}

type startInterviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartInterviewCommand) (*dto.StartedDTO, error)
}

type submitInterviewUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitInterviewCommand) (*dto.CandidateViewDTO, error)
}
