package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/application/setting/dto"
	"github.com/talento-hq/talento/internal/domain/setting"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// SettingChangeNotifier defines the interface for notifying setting changes
type SettingChangeNotifier interface {
	NotifyChange(ctx context.Context, section setting.Section) error
}

// secretFields lists credential keys per section. The admin console echoes
// masked values back; a masked value in a patch keeps the stored secret.
var secretFields = map[setting.Section][]string{
	setting.SectionPayments: {"stripeSecretKey", "stripeWebhookSecret"},
	setting.SectionSystem:   {"openaiApiKey", "smtpPassword"},
}

// UpdateSectionUseCase applies a partial update to one settings section.
type UpdateSectionUseCase struct {
	settingRepo setting.Repository
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

func NewUpdateSectionUseCase(settingRepo setting.Repository, notifier SettingChangeNotifier, logger logger.Interface) *UpdateSectionUseCase {
	return &UpdateSectionUseCase{
		settingRepo: settingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute returns the saved section with credentials masked.
func (uc *UpdateSectionUseCase) Execute(ctx context.Context, sectionName string, patch []byte, updatedBy uint) (any, error) {
	section, err := setting.ParseSection(sectionName)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Unknown settings section", sectionName)
	}

	s, err := uc.settingRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	patch, err = keepMaskedSecrets(s, section, patch)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid settings payload", err.Error())
	}

	value, err := s.PatchSection(section, patch, updatedBy)
	if err != nil {
		if errors.Is(err, setting.ErrInvalidPatch) {
			return nil, apperrors.NewValidationError("Invalid settings payload", err.Error())
		}
		return nil, err
	}
	if err := utils.ValidateStruct(value); err != nil {
		return nil, err
	}

	if err := uc.settingRepo.SaveSection(ctx, s, section); err != nil {
		uc.logger.Errorw("failed to save settings section", "section", section, "error", err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyChange(ctx, section); err != nil {
			uc.logger.Warnw("failed to notify setting change", "section", section, "error", err)
		}
	}

	uc.logger.Infow("settings section updated", "section", section, "updated_by", updatedBy)
	return dto.MaskSection(value), nil
}

func keepMaskedSecrets(s *setting.Settings, section setting.Section, patch []byte) ([]byte, error) {
	fields, ok := secretFields[section]
	if !ok {
		return patch, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(patch, &obj); err != nil {
		return nil, err
	}

	current, err := s.SectionValue(section)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}

	changed := false
	for _, field := range fields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		var incoming string
		if json.Unmarshal(v, &incoming) != nil {
			continue
		}
		old, _ := stored[field].(string)
		if old != "" && incoming == utils.MaskSecret(old) {
			delete(obj, field)
			changed = true
		}
	}
	if !changed {
		return patch, nil
	}
	return json.Marshal(obj)
}
