package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/talento-hq/talento/internal/domain/setting"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/mappers"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/constants"
	"github.com/talento-hq/talento/internal/shared/db"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// SettingsRepository implements setting.Repository using GORM
type SettingsRepository struct {
	db     *gorm.DB
	mapper mappers.SettingsMapper
	logger logger.Interface
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB, logger logger.Interface) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		mapper: mappers.NewSettingsMapper(),
		logger: logger,
	}
}

// GetOrCreate inserts the default row with ON CONFLICT DO NOTHING and then
// reads it back, so concurrent first reads converge on a single row.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*setting.Settings, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SettingsModel
	result := tx.Where("id = ?", constants.SettingsSingletonID).Limit(1).Find(&model)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get settings: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return r.mapper.ToEntity(&model)
	}

	defaults, err := r.mapper.ToModel(setting.NewDefaultSettings(constants.SettingsSingletonID))
	if err != nil {
		return nil, err
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	if err := tx.Where("id = ?", constants.SettingsSingletonID).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	r.logger.Infow("settings initialized with defaults")
	return r.mapper.ToEntity(&model)
}

// SaveSection writes a single section column. Other sections are left as
// stored so concurrent updates to different sections never clobber each
// other.
func (r *SettingsRepository) SaveSection(ctx context.Context, s *setting.Settings, section setting.Section) error {
	column, value, err := r.mapper.SectionColumn(s, section)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SettingsModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			column:       value,
			"updated_by": s.UpdatedBy(),
			"updated_at": s.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save settings section", "section", section, "error", result.Error)
		return fmt.Errorf("failed to save settings section %s: %w", section, result.Error)
	}
	return nil
}
