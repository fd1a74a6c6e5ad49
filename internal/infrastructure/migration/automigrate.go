package migration

import (
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models managed by GormAutoMigrateStrategy.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.AccountModel{},
		&models.PaymentModel{},
		&models.InterviewModel{},
		&models.SettingsModel{},
	}
}
