package models

import (
	"time"

	"github.com/talento-hq/talento/internal/shared/constants"
)

type PaymentModel struct {
	ID              uint    `gorm:"primaryKey"`
	SID             string  `gorm:"column:sid;uniqueIndex;size:50;not null"`
	AccountID       uint    `gorm:"index;not null"`
	PlanID          uint    `gorm:"index;not null"`
	Amount          int64   `gorm:"not null"`
	Currency        string  `gorm:"size:3;not null;default:USD"`
	Method          string  `gorm:"size:20;not null;index:idx_payments_method_status"`
	Status          string  `gorm:"size:20;not null;index:idx_payments_method_status"`
	EvidenceRef     string  `gorm:"size:500"`
	Note            string  `gorm:"size:1000"`
	ExternalRef     *string `gorm:"uniqueIndex;size:255"`
	ApprovedBy      *uint
	ApprovedAt      *time.Time
	RejectionReason string `gorm:"size:500"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
