package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
path = "/tmp/wash.db"

[session]
cookie_name = "sid"
ttl_minutes = 30

[admin]
emails = [" Boss@Wash.com ", ""]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "/tmp/wash.db", cfg.Database.Path)
	assert.False(t, cfg.Database.IsHosted())
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL())
	assert.Equal(t, []string{"boss@wash.com"}, cfg.Admin.Emails)

	// значения по умолчанию
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
`)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/wash?sslmode=disable")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("ADMIN_EMAILS", "a@x.com,b@x.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Database.IsHosted())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.Admin.Emails)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 70000
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("valid file", func(t *testing.T) {
		t.Setenv("CARWASH_DOTENV_CHECK", "")
		require.NoError(t, os.Unsetenv("CARWASH_DOTENV_CHECK"))

		path := filepath.Join(dir, "valid.env")
		require.NoError(t, os.WriteFile(path, []byte("CARWASH_DOTENV_CHECK=yes\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "yes", os.Getenv("CARWASH_DOTENV_CHECK"))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.env")
		require.NoError(t, os.WriteFile(path, []byte("BAD-KEY=1\n"), 0o600))

		err := loadDotEnv(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.env")
	})
}
