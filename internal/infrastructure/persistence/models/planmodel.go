package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/shared/constants"
)

// PlanModel represents the database persistence model for plans.
// InterviewQuota of -1 means unlimited. Columns whose zero value is
// meaningful (quota 0, inactive) carry no gorm default, otherwise Create
// would skip them and store the column default instead.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	Name           string `gorm:"uniqueIndex;not null;size:100"`
	Price          int64  `gorm:"not null;default:0"`
	Currency       string `gorm:"not null;size:3;default:USD"`
	InterviewQuota int    `gorm:"not null"`
	Features       datatypes.JSON
	IsActive       bool `gorm:"not null;index"`
	IsCustom       bool `gorm:"not null;default:false"`
	IsRecommended  bool `gorm:"not null;default:false"`
	DisplayOrder   int  `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
