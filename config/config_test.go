package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/data/futsalero.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ProfileTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/league.db")
	t.Setenv("ALLOW_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("PROFILE_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/league.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.Redis.ProfileTTL)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "league.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  port: 7000\nlog:\n  level: debug\n"), 0o600))

	cfg, err := LoadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestPostgresRequiresDSN(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
