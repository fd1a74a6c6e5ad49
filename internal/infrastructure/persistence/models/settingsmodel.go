package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/shared/constants"
)

// SettingsModel is the GORM model for the settings singleton; each
// section is stored as its own JSON column so section updates never
// overwrite one another.
type SettingsModel struct {
	ID        uint           `gorm:"primaryKey"`
	Branding  datatypes.JSON `gorm:"column:branding"`
	Homepage  datatypes.JSON `gorm:"column:homepage"`
	Payments  datatypes.JSON `gorm:"column:payments"`
	System    datatypes.JSON `gorm:"column:system"`
	Legal     datatypes.JSON `gorm:"column:legal"`
	UpdatedBy *uint          `gorm:"column:updated_by"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SettingsModel) TableName() string {
	return constants.TableSettings
}
