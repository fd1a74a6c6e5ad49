package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/talento-hq/talento/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, SyncDefaultPolicies(e, logger.NewNopLogger()))
	return e, db
}

func TestDefaultPolicies(t *testing.T) {
	e, _ := newTestEnforcer(t)

	tests := []struct {
		role, path, method string
		allowed            bool
	}{
		{"member", "/api/interviews", "POST", true},
		{"member", "/api/interviews", "DELETE", false},
		{"member", "/api/interviews/int_123/report", "GET", true},
		{"member", "/api/payments/pay_123", "GET", true},
		{"member", "/api/payments/history", "GET", true},
		{"member", "/api/admin/dashboard", "GET", false},
		{"member", "/api/admin/plans/plan_1", "DELETE", false},
		{"superadmin", "/api/admin/plans/plan_1", "DELETE", true},
		{"superadmin", "/api/admin/settings/branding", "PUT", true},
		{"superadmin", "/api/interviews", "GET", true},
		{"guest", "/api/interviews", "GET", false},
	}
	for _, tt := range tests {
		allowed, err := e.Enforce(tt.role, tt.path, tt.method)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "%s %s %s", tt.role, tt.method, tt.path)
	}
}

func TestSyncDefaultPolicies_IsIdempotentAndPersists(t *testing.T) {
	e, db := newTestEnforcer(t)
	require.NoError(t, SyncDefaultPolicies(e, logger.NewNopLogger()))

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.EqualValues(t, len(DefaultPolicies()), count)

	require.NoError(t, e.RemovePolicy("member", "/api/dashboard", "GET"))
	require.NoError(t, e.LoadPolicy())
	allowed, err := e.Enforce("member", "/api/dashboard", "GET")
	require.NoError(t, err)
	assert.False(t, allowed)

	perms, err := e.GetPermissionsForRole("superadmin")
	require.NoError(t, err)
	assert.Len(t, perms, 1)
}
