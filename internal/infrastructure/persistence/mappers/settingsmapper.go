package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
)

// SettingsMapper converts the settings singleton between domain and persistence.
type SettingsMapper interface {
	ToEntity(model *models.SettingsModel) (*setting.Settings, error)
	ToModel(entity *setting.Settings) (*models.SettingsModel, error)
	// SectionColumn returns the column name and encoded value of one section.
	SectionColumn(entity *setting.Settings, section setting.Section) (string, datatypes.JSON, error)
}

type settingsMapper struct{}

func NewSettingsMapper() SettingsMapper {
	return &settingsMapper{}
}

// decodeSection unmarshals raw over the defaults so columns written by an
// older release still yield complete sections.
func decodeSection[T any](raw datatypes.JSON, defaults T) (T, error) {
	if len(raw) == 0 {
		return defaults, nil
	}
	v := defaults
	if err := json.Unmarshal(raw, &v); err != nil {
		return defaults, err
	}
	return v, nil
}

func (m *settingsMapper) ToEntity(model *models.SettingsModel) (*setting.Settings, error) {
	if model == nil {
		return nil, nil
	}

	branding, err := decodeSection(model.Branding, setting.DefaultBranding())
	if err != nil {
		return nil, fmt.Errorf("failed to decode branding: %w", err)
	}
	homepage, err := decodeSection(model.Homepage, setting.DefaultHomepage())
	if err != nil {
		return nil, fmt.Errorf("failed to decode homepage: %w", err)
	}
	payments, err := decodeSection(model.Payments, setting.DefaultPayments())
	if err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	system, err := decodeSection(model.System, setting.DefaultSystem())
	if err != nil {
		return nil, fmt.Errorf("failed to decode system: %w", err)
	}
	legal, err := decodeSection(model.Legal, setting.DefaultLegal())
	if err != nil {
		return nil, fmt.Errorf("failed to decode legal: %w", err)
	}

	return setting.ReconstructSettings(
		model.ID,
		branding,
		homepage,
		payments,
		system,
		legal,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *settingsMapper) ToModel(entity *setting.Settings) (*models.SettingsModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.SettingsModel{
		ID:        entity.ID(),
		UpdatedBy: entity.UpdatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
	for _, section := range setting.AllSections {
		_, raw, err := m.SectionColumn(entity, section)
		if err != nil {
			return nil, err
		}
		switch section {
		case setting.SectionBranding:
			model.Branding = raw
		case setting.SectionHomepage:
			model.Homepage = raw
		case setting.SectionPayments:
			model.Payments = raw
		case setting.SectionSystem:
			model.System = raw
		case setting.SectionLegal:
			model.Legal = raw
		}
	}
	return model, nil
}

func (m *settingsMapper) SectionColumn(entity *setting.Settings, section setting.Section) (string, datatypes.JSON, error) {
	value, err := entity.SectionValue(section)
	if err != nil {
		return "", nil, err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal %s: %w", section, err)
	}
	return section.String(), datatypes.JSON(data), nil
}
