package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/mapper"
)

// InterviewMapper handles the conversion between interview entities and persistence models
type InterviewMapper interface {
	ToEntity(model *models.InterviewModel) (*interview.Interview, error)
	ToModel(entity *interview.Interview) (*models.InterviewModel, error)
	ToEntities(models []*models.InterviewModel) ([]*interview.Interview, error)
}

type interviewMapper struct{}

func NewInterviewMapper() InterviewMapper {
	return &interviewMapper{}
}

func (m *interviewMapper) ToEntity(model *models.InterviewModel) (*interview.Interview, error) {
	if model == nil {
		return nil, nil
	}

	questions := []interview.Question{}
	if len(model.Questions) > 0 {
		if err := json.Unmarshal(model.Questions, &questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
	}
	answers := []interview.Answer{}
	if len(model.Answers) > 0 {
		if err := json.Unmarshal(model.Answers, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}
	var analysis *interview.Analysis
	if len(model.Analysis) > 0 && string(model.Analysis) != "null" {
		analysis = &interview.Analysis{}
		if err := json.Unmarshal(model.Analysis, analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
	}

	return interview.ReconstructInterview(
		model.ID,
		model.SID,
		model.AccountID,
		model.JobTitle,
		model.Link,
		model.CandidateName,
		model.CandidateEmail,
		questions,
		answers,
		analysis,
		interview.Status(model.Status),
		model.StartedAt,
		model.CompletedAt,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *interviewMapper) ToModel(entity *interview.Interview) (*models.InterviewModel, error) {
	if entity == nil {
		return nil, nil
	}

	questions, err := json.Marshal(entity.Questions())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	answers, err := json.Marshal(entity.Answers())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	var analysis datatypes.JSON
	if a := entity.Analysis(); a != nil {
		data, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis: %w", err)
		}
		analysis = data
	}

	return &models.InterviewModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		AccountID:      entity.AccountID(),
		JobTitle:       entity.JobTitle(),
		Link:           entity.Link(),
		CandidateName:  entity.CandidateName(),
		CandidateEmail: entity.CandidateEmail(),
		Questions:      questions,
		Answers:        answers,
		Analysis:       analysis,
		Status:         entity.Status().String(),
		StartedAt:      entity.StartedAt(),
		CompletedAt:    entity.CompletedAt(),
		ExpiresAt:      entity.ExpiresAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *interviewMapper) ToEntities(modelList []*models.InterviewModel) ([]*interview.Interview, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.InterviewModel) uint { return model.ID })
}
