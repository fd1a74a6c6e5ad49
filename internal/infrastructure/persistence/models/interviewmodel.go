package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/talento-hq/talento/internal/shared/constants"
)

type InterviewModel struct {
	ID             uint   `gorm:"primaryKey"`
	SID            string `gorm:"column:sid;uniqueIndex;size:50;not null"`
	AccountID      uint   `gorm:"not null;index:idx_interviews_account_created"`
	JobTitle       string `gorm:"size:200;not null"`
	Link           string `gorm:"uniqueIndex;size:20;not null"`
	CandidateName  string `gorm:"size:100"`
	CandidateEmail string `gorm:"size:255"`
	Questions      datatypes.JSON
	Answers        datatypes.JSON
	Analysis       datatypes.JSON
	Status         string `gorm:"size:20;not null;default:pending;index"`
	StartedAt      *time.Time
	CompletedAt    *time.Time
	ExpiresAt      *time.Time
	CreatedAt      time.Time `gorm:"index:idx_interviews_account_created"`
	UpdatedAt      time.Time
}

func (InterviewModel) TableName() string {
	return constants.TableInterviews
}
