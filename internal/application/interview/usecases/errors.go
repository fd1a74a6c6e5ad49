package usecases

import (
	"errors"

	"github.com/talento-hq/talento/internal/domain/interview"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
)

// mapInterviewError turns domain failures into client errors. Unknown errors
// pass through unchanged.
func mapInterviewError(err error) error {
	switch {
	case errors.Is(err, interview.ErrInterviewNotFound):
		return apperrors.NewNotFoundError("Interview not found")
	case errors.Is(err, interview.ErrAlreadyCompleted),
		errors.Is(err, interview.ErrInterviewExpired),
		errors.Is(err, interview.ErrNotStarted):
		return apperrors.NewBadRequestError(err.Error())
	case errors.Is(err, interview.ErrJobTitleRequired),
		errors.Is(err, interview.ErrJobTitleTooLong),
		errors.Is(err, interview.ErrCandidateRequired),
		errors.Is(err, interview.ErrInvalidCandidate),
		errors.Is(err, interview.ErrAnswersRequired):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}
