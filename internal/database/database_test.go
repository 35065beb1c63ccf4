package database

import (
	"path/filepath"
	"testing"

	"budget-planner/internal/config"
	"budget-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(path string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Enabled:        true,
		Driver:         config.DriverSQLite,
		SQLitePath:     path,
		MaxConnections: 1,
		MaxIdleConns:   1,
	}
}

func TestInitialize_SQLiteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "exports.db")

	db, err := Initialize(sqliteConfig(path))
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.ExportBatch{}))
	assert.True(t, db.Migrator().HasTable(&models.ExportedTransaction{}))
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig("unused.db")
	cfg.Driver = "oracle"

	_, err := New(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)

	var count int64
	require.NoError(t, db.Model(&models.ExportBatch{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
