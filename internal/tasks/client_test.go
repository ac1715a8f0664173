package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabinsunar/library-app/internal/config"
)

func TestDatabasePath(t *testing.T) {
	tests := []struct {
		catalog string
		want    string
	}{
		{"library.db", "library-tasks.db"},
		{"./data/library.db", "data/library-tasks.db"},
		{"/var/lib/catalog", "/var/lib/catalog-tasks"},
		{"/srv/lib.v2/catalog.sqlite", "/srv/lib.v2/catalog-tasks.sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.catalog, func(t *testing.T) {
			assert.Equal(t, filepath.Clean(tt.want), filepath.Clean(DatabasePath(tt.catalog)))
		})
	}
}

func TestNewClient_CreatesQueueDatabase(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(filepath.Join(dir, "library.db"), DefaultConfig())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "library-tasks.db"))
	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestNewClient_ZeroConfigUsesDefaults(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "library.db"), Config{})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 1, client.workers)
}

func TestConfig_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Config{}.withDefaults())
	assert.Equal(t, DefaultConfig(), Config{Workers: -1, ReleaseAfter: -time.Second}.withDefaults())

	custom := Config{Workers: 3, ReleaseAfter: time.Minute, CleanupInterval: 2 * time.Hour}
	assert.Equal(t, custom, custom.withDefaults())
}

func TestNewClient_FromEnvironmentConfig(t *testing.T) {
	t.Setenv("TASK_RELEASE_AFTER", "15")
	t.Setenv("TASK_CLEANUP_INTERVAL", "0")
	cfg := config.NewConfig()

	client, err := NewClient(filepath.Join(t.TempDir(), "library.db"), Config{
		Workers:         cfg.Tasks.Workers,
		ReleaseAfter:    cfg.Tasks.ReleaseAfter,
		CleanupInterval: cfg.Tasks.CleanupInterval,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.Tasks.CleanupInterval)
}

func TestClientStartStop(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "library.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx))
	assert.True(t, client.Stop(stopCtx), "second stop is a no-op")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
