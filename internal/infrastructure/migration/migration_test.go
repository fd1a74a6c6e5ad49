package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/talento-hq/talento/internal/shared/constants"
)

func TestGooseStrategy_EmbeddedVersions(t *testing.T) {
	versions, err := NewGooseStrategy("mysql").Versions()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, versions)
}

func TestManager_AutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	m := NewManager("sqlite")
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())
	require.NoError(t, m.Migrate(context.Background(), db))

	for _, table := range []string{
		constants.TableAccounts,
		constants.TablePlans,
		constants.TablePayments,
		constants.TableInterviews,
		constants.TableSettings,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestManager_SelectsGooseForMySQL(t *testing.T) {
	m := NewManager("mysql")
	assert.Equal(t, "goose", m.GetStrategy().GetName())
	assert.Contains(t, m.GetStrategyInfo()["description"], "goose")
}
