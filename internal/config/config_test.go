package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1793, cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 20, cfg.Security.MessageLimit.MaxPerSecond)
}

func TestLoad(t *testing.T) {
	content := `
server:
  host: 127.0.0.1
  port: 9000
redis:
  addr: redis:6379
  db: 2
game:
  room_idle_timeout: 5
security:
  allowed_origins:
    - https://vault.example.com
  message_limit:
    max_per_second: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"https://vault.example.com"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 5, cfg.Security.MessageLimit.MaxPerSecond)

	// Unset fields fall back to defaults.
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, 3, cfg.Game.RoomCleanupDelay)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.Game.RoomIdleTimeoutDuration().Minutes(), float64(cfg.Game.RoomIdleTimeout))
	assert.Equal(t, cfg.Game.RoomCleanupDelayDuration().Seconds(), float64(cfg.Game.RoomCleanupDelay))
	assert.Equal(t, cfg.Game.ShutdownCheckIntervalDuration().Seconds(), float64(cfg.Game.ShutdownCheck))
}
