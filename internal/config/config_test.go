package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Security.CSRFSecret)
	assert.True(t, cfg.Security.SecureCookies)
	assert.Equal(t, 24*time.Hour, cfg.Security.SessionLifetime)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, 1, cfg.Tasks.Workers)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, DefaultIntegritySweepSchedule, cfg.IntegritySweep.Schedule)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=localhost user=library dbname=library")
	t.Setenv("SESSION_LIFETIME", "2h")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=library dbname=library", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Security.SessionLifetime)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_FORMAT=json\n"), 0o600))
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_FORMAT")

	cfg := Load(envFile)

	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestNewConfig_InvalidDurationsUseDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"no unit", "15"},
		{"zero", "0"},
		{"negative", "-5m"},
		{"garbage", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TASK_RELEASE_AFTER", tt.value)
			t.Setenv("TASK_CLEANUP_INTERVAL", tt.value)
			t.Setenv("SESSION_LIFETIME", tt.value)

			cfg := NewConfig()

			assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
			assert.Equal(t, time.Hour, cfg.Tasks.CleanupInterval)
			assert.Equal(t, 24*time.Hour, cfg.Security.SessionLifetime)
		})
	}
}

func TestNewConfig_TaskDurations(t *testing.T) {
	t.Setenv("TASK_RELEASE_AFTER", "90s")
	t.Setenv("TASK_CLEANUP_INTERVAL", "30m")

	cfg := NewConfig()

	assert.Equal(t, 90*time.Second, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, 30*time.Minute, cfg.Tasks.CleanupInterval)
}
