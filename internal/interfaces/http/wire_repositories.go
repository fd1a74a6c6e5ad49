package http

import (
	"gorm.io/gorm"

	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/infrastructure/repository"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	accountRepo   *repository.AccountRepository
	planRepo      plan.Repository
	paymentRepo   *repository.PaymentRepository
	settingRepo   *repository.SettingsRepository
	interviewRepo *repository.InterviewRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		accountRepo:   repository.NewAccountRepository(db, log),
		planRepo:      repository.NewPlanRepository(db, log),
		paymentRepo:   repository.NewPaymentRepository(db, log),
		settingRepo:   repository.NewSettingsRepository(db, log),
		interviewRepo: repository.NewInterviewRepository(db, log),
	}
}
