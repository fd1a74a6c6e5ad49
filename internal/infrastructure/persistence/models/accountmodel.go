package models

import (
	"time"

	"github.com/talento-hq/talento/internal/shared/constants"
)

// AccountModel represents the database persistence model for accounts.
// PlanID and InterviewsUsed are written only by the quota increment and
// the payment approval workflow.
type AccountModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string `gorm:"not null;size:255"`
	Name           string `gorm:"not null;size:100"`
	CompanyName    string `gorm:"not null;size:200"`
	Role           string `gorm:"not null;size:20;default:member;index"`
	PlanID         *uint  `gorm:"index"`
	InterviewsUsed int    `gorm:"not null;default:0"`
	PaymentStatus  string `gorm:"not null;size:20;default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}
