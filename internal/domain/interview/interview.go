package interview

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/talento-hq/talento/internal/domain/shared"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/id"
)

const maxJobTitleLength = 200

type Question struct {
	Question string    `json:"question"`
	AskedAt  time.Time `json:"askedAt"`
}

type Answer struct {
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnsweredAt time.Time `json:"answeredAt"`
}

type Analysis struct {
	Summary         string   `json:"summary"`
	ConfidenceScore int      `json:"confidenceScore"`
	KeywordAnalysis []string `json:"keywordAnalysis"`
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	Recommendation  string   `json:"recommendation"`
}

// Interview is a candidate session created by an account. Creating one
// consumes one unit of the owner's plan quota.
type Interview struct {
	id             uint
	sid            string
	accountID      uint
	jobTitle       string
	link           string
	candidateName  string
	candidateEmail string
	questions      []Question
	answers        []Answer
	analysis       *Analysis
	status         Status
	startedAt      *time.Time
	completedAt    *time.Time
	expiresAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewInterview creates a pending interview with a fresh share link.
func NewInterview(accountID uint, jobTitle string, expiresAt *time.Time) (*Interview, error) {
	if accountID == 0 {
		return nil, ErrOwnerRequired
	}
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, ErrJobTitleRequired
	}
	if utf8.RuneCountInString(jobTitle) > maxJobTitleLength {
		return nil, ErrJobTitleTooLong
	}

	sid, err := id.NewInterviewSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview SID: %w", err)
	}
	link, err := id.NewInterviewLink()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLinkGenerationFail, err)
	}

	now := biztime.NowUTC()
	return &Interview{
		sid:       sid,
		accountID: accountID,
		jobTitle:  jobTitle,
		link:      link,
		questions: []Question{},
		answers:   []Answer{},
		status:    StatusPending,
		expiresAt: expiresAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructInterview rebuilds an interview from persistence.
func ReconstructInterview(
	id uint,
	sid string,
	accountID uint,
	jobTitle, link string,
	candidateName, candidateEmail string,
	questions []Question,
	answers []Answer,
	analysis *Analysis,
	status Status,
	startedAt, completedAt, expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Interview {
	return &Interview{
		id:             id,
		sid:            sid,
		accountID:      accountID,
		jobTitle:       jobTitle,
		link:           link,
		candidateName:  candidateName,
		candidateEmail: candidateEmail,
		questions:      questions,
		answers:        answers,
		analysis:       analysis,
		status:         status,
		startedAt:      startedAt,
		completedAt:    completedAt,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// RegenerateLink replaces the share link, used when the stored link collides.
func (i *Interview) RegenerateLink() error {
	link, err := id.NewInterviewLink()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinkGenerationFail, err)
	}
	i.link = link
	return nil
}

// CheckOpen reports whether a candidate may still view or take the interview.
// A pending interview past its expiry is marked expired.
func (i *Interview) CheckOpen() error {
	switch i.status {
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusExpired:
		return ErrInterviewExpired
	}
	if shared.IsExpired(i.expiresAt) {
		i.status = StatusExpired
		i.updatedAt = biztime.NowUTC()
		return ErrInterviewExpired
	}
	return nil
}

// Start records the candidate and the opening questions.
func (i *Interview) Start(candidateName, candidateEmail string, questions []string) error {
	if err := i.CheckOpen(); err != nil {
		return err
	}
	candidateName = strings.TrimSpace(candidateName)
	candidateEmail = strings.ToLower(strings.TrimSpace(candidateEmail))
	if candidateName == "" || candidateEmail == "" {
		return ErrCandidateRequired
	}
	if _, err := mail.ParseAddress(candidateEmail); err != nil {
		return ErrInvalidCandidate
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	now := biztime.NowUTC()
	qs := make([]Question, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, Question{Question: q, AskedAt: now})
	}

	i.candidateName = candidateName
	i.candidateEmail = candidateEmail
	i.questions = qs
	i.status = StatusInProgress
	i.startedAt = &now
	i.updatedAt = now
	return nil
}

// ValidateSubmission checks that answers may be recorded. It runs before the
// analyzer so an invalid submission costs nothing.
func (i *Interview) ValidateSubmission(answers []Answer) error {
	if err := i.CheckOpen(); err != nil {
		return err
	}
	if i.status != StatusInProgress {
		return ErrNotStarted
	}
	if len(answers) == 0 {
		return ErrAnswersRequired
	}
	return nil
}

// Complete records the answers and their analysis.
func (i *Interview) Complete(answers []Answer, analysis Analysis) error {
	if err := i.ValidateSubmission(answers); err != nil {
		return err
	}

	now := biztime.NowUTC()
	recorded := make([]Answer, 0, len(answers))
	for _, a := range answers {
		recorded = append(recorded, Answer{
			Question:   strings.TrimSpace(a.Question),
			Answer:     strings.TrimSpace(a.Answer),
			AnsweredAt: now,
		})
	}

	i.answers = recorded
	i.analysis = &analysis
	i.status = StatusCompleted
	i.completedAt = &now
	i.updatedAt = now
	return nil
}

func (i *Interview) IsOwnedBy(accountID uint) bool {
	return i.accountID == accountID
}

func (i *Interview) ID() uint                { return i.id }
func (i *Interview) SID() string             { return i.sid }
func (i *Interview) AccountID() uint         { return i.accountID }
func (i *Interview) JobTitle() string        { return i.jobTitle }
func (i *Interview) Link() string            { return i.link }
func (i *Interview) CandidateName() string   { return i.candidateName }
func (i *Interview) CandidateEmail() string  { return i.candidateEmail }
func (i *Interview) Questions() []Question   { return i.questions }
func (i *Interview) Answers() []Answer       { return i.answers }
func (i *Interview) Analysis() *Analysis     { return i.analysis }
func (i *Interview) Status() Status          { return i.status }
func (i *Interview) StartedAt() *time.Time   { return i.startedAt }
func (i *Interview) CompletedAt() *time.Time { return i.completedAt }
func (i *Interview) ExpiresAt() *time.Time   { return i.expiresAt }
func (i *Interview) CreatedAt() time.Time    { return i.createdAt }
func (i *Interview) UpdatedAt() time.Time    { return i.updatedAt }

func (i *Interview) SetID(id uint) {
	i.id = id
}
