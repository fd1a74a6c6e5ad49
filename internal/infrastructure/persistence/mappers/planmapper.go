package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/mapper"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.PlanModel) (*plan.Plan, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *plan.Plan) (*models.PlanModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

// planMapper is the concrete implementation of PlanMapper
type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	features := []string{}
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	quota := plan.InterviewQuota(model.InterviewQuota)
	if !quota.IsValid() {
		return nil, fmt.Errorf("plan %d has invalid interview quota %d", model.ID, model.InterviewQuota)
	}

	return plan.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		valueobjects.NewMoney(model.Price, model.Currency),
		quota,
		features,
		model.IsActive,
		model.IsCustom,
		model.IsRecommended,
		model.DisplayOrder,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model
func (m *planMapper) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		Price:          entity.Price().AmountInCents(),
		Currency:       entity.Price().Currency(),
		InterviewQuota: entity.InterviewQuota().Int(),
		Features:       datatypes.JSON(data),
		IsActive:       entity.IsActive(),
		IsCustom:       entity.IsCustom(),
		IsRecommended:  entity.IsRecommended(),
		DisplayOrder:   entity.DisplayOrder(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *planMapper) ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlanModel) uint { return model.ID })
}
