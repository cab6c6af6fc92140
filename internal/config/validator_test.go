package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"negative hourly rate", func(c *Config) { c.Billing.HourlyRate = &negative }, true},
		{"negative line rate", func(c *Config) { c.Billing.LineRate = &negative }, true},
		{"zero gap", func(c *Config) { c.Billing.GapThreshold = 0 }, true},
		{"empty git binary", func(c *Config) { c.Git.Binary = "" }, true},
		{"unknown storage unused", func(c *Config) { c.Storage.Type = "mongo" }, false},
		{"postgres without dsn unused", func(c *Config) { c.Storage.Type = "postgres" }, false},
		{"unknown storage enabled", func(c *Config) { c.Storage.Enabled = true; c.Storage.Type = "mongo" }, true},
		{"postgres without dsn enabled", func(c *Config) { c.Storage.Enabled = true; c.Storage.Type = "postgres" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"zero concurrency", func(c *Config) { c.Summary.Concurrency = 0 }, true},
		{"short gap is fine", func(c *Config) { c.Billing.GapThreshold = time.Minute }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			result := cfg.Validate()
			assert.Equal(t, tt.wantErr, result.HasErrors(), result.Error())
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.Cache.Path = ""
	result := cfg.Validate()

	assert.False(t, result.HasErrors())
	assert.Len(t, result.Warnings, 1)
}

func TestValidateStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown type", func(c *Config) { c.Storage.Type = "mongo" }, true},
		{"postgres without dsn", func(c *Config) { c.Storage.Type = "postgres" }, true},
		{"postgres with dsn", func(c *Config) {
			c.Storage.Type = "postgres"
			c.Storage.PostgresDSN = "postgres://localhost/gitprice"
		}, false},
		{"sqlite without path", func(c *Config) { c.Storage.LocalPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Equal(t, tt.wantErr, cfg.ValidateStorage().HasErrors())
		})
	}
}
