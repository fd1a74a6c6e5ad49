package dto

import (
	"strings"
	"time"

	"github.com/talento-hq/talento/internal/domain/interview"
)

// CandidateViewDTO is what an unauthenticated candidate sees.
type CandidateViewDTO struct {
	ID       string `json:"id"`
	JobTitle string `json:"jobTitle"`
	Status   string `json:"status"`
}

type InterviewDTO struct {
	ID              string     `json:"id"`
	JobTitle        string     `json:"jobTitle"`
	UniqueLink      string     `json:"uniqueLink"`
	ShareURL        string     `json:"shareUrl,omitempty"`
	CandidateName   string     `json:"candidateName,omitempty"`
	CandidateEmail  string     `json:"candidateEmail,omitempty"`
	Status          string     `json:"status"`
	ConfidenceScore *int       `json:"confidenceScore,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

type ReportDTO struct {
	ID             string               `json:"id"`
	JobTitle       string               `json:"jobTitle"`
	CandidateName  string               `json:"candidateName"`
	CandidateEmail string               `json:"candidateEmail"`
	Questions      []interview.Question `json:"questions"`
	Answers        []interview.Answer   `json:"answers"`
	Analysis       *interview.Analysis  `json:"aiAnalysis"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	CompletedAt    *time.Time           `json:"completedAt,omitempty"`
}

// CreatedDTO is returned after a quota-consuming create.
type CreatedDTO struct {
	Interview      *InterviewDTO `json:"interview"`
	RemainingQuota int           `json:"remainingQuota"`
	UnlimitedQuota bool          `json:"unlimitedQuota"`
}

type StartedDTO struct {
	Questions []string `json:"questions"`
}

type StatsDTO struct {
	TotalInterviews     int64 `json:"totalInterviews"`
	CompletedInterviews int64 `json:"completedInterviews"`
	PendingInterviews   int64 `json:"pendingInterviews"`
}

func ToCandidateViewDTO(i *interview.Interview) *CandidateViewDTO {
	return &CandidateViewDTO{
		ID:       i.SID(),
		JobTitle: i.JobTitle(),
		Status:   i.Status().String(),
	}
}

// ToInterviewDTO converts i; shareBase is prepended to the link when set.
func ToInterviewDTO(i *interview.Interview, shareBase string) *InterviewDTO {
	out := &InterviewDTO{
		ID:             i.SID(),
		JobTitle:       i.JobTitle(),
		UniqueLink:     i.Link(),
		CandidateName:  i.CandidateName(),
		CandidateEmail: i.CandidateEmail(),
		Status:         i.Status().String(),
		CreatedAt:      i.CreatedAt(),
		CompletedAt:    i.CompletedAt(),
		ExpiresAt:      i.ExpiresAt(),
	}
	if shareBase != "" {
		out.ShareURL = ShareURL(shareBase, i.Link())
	}
	if a := i.Analysis(); a != nil {
		score := a.ConfidenceScore
		out.ConfidenceScore = &score
	}
	return out
}

func ToInterviewDTOList(items []*interview.Interview, shareBase string) []*InterviewDTO {
	out := make([]*InterviewDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ToInterviewDTO(i, shareBase))
	}
	return out
}

func ToReportDTO(i *interview.Interview) *ReportDTO {
	return &ReportDTO{
		ID:             i.SID(),
		JobTitle:       i.JobTitle(),
		CandidateName:  i.CandidateName(),
		CandidateEmail: i.CandidateEmail(),
		Questions:      i.Questions(),
		Answers:        i.Answers(),
		Analysis:       i.Analysis(),
		Status:         i.Status().String(),
		CreatedAt:      i.CreatedAt(),
		CompletedAt:    i.CompletedAt(),
	}
}

func ToStatsDTO(s interview.Stats) StatsDTO {
	return StatsDTO{
		TotalInterviews:     s.Total,
		CompletedInterviews: s.Completed,
		PendingInterviews:   s.Pending,
	}
}

// ShareURL is the candidate-facing address of an interview.
func ShareURL(clientOrigin, link string) string {
	return strings.TrimRight(clientOrigin, "/") + "/interview/" + link
}
