package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Nil(t, cfg.Billing.HourlyRate)
	assert.Nil(t, cfg.Billing.LineRate)
	assert.Equal(t, 2*time.Hour, cfg.Billing.GapThreshold)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.False(t, Default().Validate().HasErrors())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
billing:
  hourly_rate: 80
  gap_threshold: 90m
git:
  repo_path: /src/app
storage:
  enabled: true
  type: postgres
  postgres_dsn: postgres://localhost/gitprice
logging:
  level: debug
summary:
  concurrency: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Billing.HourlyRate)
	assert.Equal(t, 80.0, *cfg.Billing.HourlyRate)
	assert.Nil(t, cfg.Billing.LineRate)
	assert.Equal(t, 90*time.Minute, cfg.Billing.GapThreshold)
	assert.Equal(t, "/src/app", cfg.Git.RepoPath)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "postgres", cfg.Storage.Type)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Summary.Concurrency)
	assert.False(t, cfg.Validate().HasErrors())
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("billing:\n  hourly_rate: 50\n"), 0644))

	t.Setenv("GITPRICE_BILLING_HOURLY_RATE", "75")
	t.Setenv("GITPRICE_BILLING_LINE_RATE", "0.2")
	t.Setenv("GITPRICE_GIT_BINARY", "/usr/local/bin/git")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Billing.HourlyRate)
	assert.Equal(t, 75.0, *cfg.Billing.HourlyRate)
	require.NotNil(t, cfg.Billing.LineRate)
	assert.Equal(t, 0.2, *cfg.Billing.LineRate)
	assert.Equal(t, "/usr/local/bin/git", cfg.Git.Binary)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	rate := 30.0
	cfg.Billing.HourlyRate = &rate
	cfg.Billing.GapThreshold = 45 * time.Minute
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Billing.HourlyRate)
	assert.Equal(t, 30.0, *loaded.Billing.HourlyRate)
	assert.Equal(t, 45*time.Minute, loaded.Billing.GapThreshold)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".gitprice", "x.db"), expandPath("~/.gitprice/x.db"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}
