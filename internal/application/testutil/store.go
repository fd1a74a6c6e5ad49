// Package testutil provides a SQLite-backed store for use case tests, so
// guarded updates and transactions run against a real database.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/infrastructure/repository"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/db"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/testdata"
)

type Store struct {
	DB         *gorm.DB
	TxMgr      *db.TransactionManager
	Accounts   *repository.AccountRepository
	Plans      plan.Repository
	Payments   *repository.PaymentRepository
	Settings   *repository.SettingsRepository
	Interviews *repository.InterviewRepository
	Logger     logger.Interface
}

// NewStore opens a private in-memory database for t.
func NewStore(t testing.TB) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.AccountModel{},
		&models.PlanModel{},
		&models.PaymentModel{},
		&models.SettingsModel{},
		&models.InterviewModel{},
	))

	log := logger.NewNopLogger()
	return &Store{
		DB:         gdb,
		TxMgr:      db.NewTransactionManager(gdb),
		Accounts:   repository.NewAccountRepository(gdb, log),
		Plans:      repository.NewPlanRepository(gdb, log),
		Payments:   repository.NewPaymentRepository(gdb, log),
		Settings:   repository.NewSettingsRepository(gdb, log),
		Interviews: repository.NewInterviewRepository(gdb, log),
		Logger:     log,
	}
}

// CreatePlan persists a generated plan.
func (s *Store) CreatePlan(t testing.TB, opts testdata.PlanOptions) *plan.Plan {
	t.Helper()
	p, err := testdata.Plan(opts)
	require.NoError(t, err)
	require.NoError(t, s.Plans.Create(context.Background(), p))
	return p
}

// CreateMember persists a member account on p, or without a plan when p is nil.
func (s *Store) CreateMember(t testing.TB, p *plan.Plan) *account.Account {
	t.Helper()
	var planID *uint
	if p != nil {
		id := p.ID()
		planID = &id
	}
	a, err := testdata.Account(planID)
	require.NoError(t, err)
	require.NoError(t, s.Accounts.Create(context.Background(), a))
	return a
}

// CreateAdmin persists a super admin.
func (s *Store) CreateAdmin(t testing.TB) *account.Account {
	t.Helper()
	a := s.CreateMember(t, nil)
	require.NoError(t, s.Accounts.UpdateRole(context.Background(), a.ID(), authorization.RoleSuperAdmin))
	admin, err := s.Accounts.GetByID(context.Background(), a.ID())
	require.NoError(t, err)
	return admin
}

// Reload re-reads an account.
func (s *Store) Reload(t testing.TB, a *account.Account) *account.Account {
	t.Helper()
	fresh, err := s.Accounts.GetByID(context.Background(), a.ID())
	require.NoError(t, err)
	return fresh
}
