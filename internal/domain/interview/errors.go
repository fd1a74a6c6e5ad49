package interview

import "errors"

var (
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrJobTitleRequired   = errors.New("job title is required")
	ErrJobTitleTooLong    = errors.New("job title cannot exceed 200 characters")
	ErrOwnerRequired      = errors.New("owner account is required")
	ErrAlreadyCompleted   = errors.New("this interview has already been completed")
	ErrInterviewExpired   = errors.New("this interview has expired")
	ErrNotStarted         = errors.New("interview has not been started")
	ErrCandidateRequired  = errors.New("candidate name and email are required")
	ErrInvalidCandidate   = errors.New("invalid candidate email")
	ErrAnswersRequired    = errors.New("answers are required")
	ErrNoQuestions        = errors.New("no questions were generated")
	ErrLinkGenerationFail = errors.New("failed to generate interview link")
)
