package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `environment: test

server:
  port: 8081

database:
  host: localhost
  username: payments_test
  password: payments_test
  database: payments_test

logger:
  level: debug
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "test.yaml"), []byte(testConfigYAML), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("PS_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8081, cfg.Server.Port)

	// values absent from the file come from the defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)

	// raw second/minute counts become durations
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("PS_ENV", "test")
	t.Setenv("PS_DB_HOST", "db.internal")
	t.Setenv("PS_DB_PASSWORD", "secret")
	t.Setenv("PS_DB_SSL_MODE", "require")
	t.Setenv("PS_LOGGER_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "warn", cfg.Logger.Level)

	// file values not shadowed by the environment survive
	assert.Equal(t, "payments_test", cfg.Database.Username)
}

func TestLoadConfigMissingFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PS_ENV", "test")

	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("PS_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("PS_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
