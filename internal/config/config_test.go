package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_PATH", "LLM_PROVIDER", "MAX_FILE_SIZE", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "S3_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "1.0.0", cfg.Server.Version)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "cv_scanner.db", cfg.GetDatabaseDSN())
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, int64(16*1024*1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, []string{"pdf", "docx", "doc"}, cfg.Storage.AllowedExtensions)
	assert.Equal(t, 0, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Mirror.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "matcher")
	t.Setenv("LLM_PROVIDER", "openrouter")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("S3_BUCKET", "uploads")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db")
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=matcher")
	assert.Equal(t, ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, 10, cfg.RateLimit.Max)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.True(t, cfg.Mirror.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "mysql"},
		LLM:      LLMConfig{Provider: ProviderGemini},
		Storage:  StorageConfig{MaxFileSize: 1},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverSQLite
	cfg.LLM.Provider = "claude"
	assert.Error(t, cfg.Validate())

	cfg.LLM.Provider = ProviderOpenRouter
	cfg.Storage.MaxFileSize = 0
	assert.Error(t, cfg.Validate())
}

func TestOpenDatabaseMigratesIdempotently(t *testing.T) {
	db, err := OpenDatabase(DriverSQLite, filepath.Join(t.TempDir(), "app.db"), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "cvs", "job_descriptions", "analysis_results"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	_, err = OpenDatabase("oracle", "", nil)
	assert.Error(t, err)
}
