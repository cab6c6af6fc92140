package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration settings
type Config struct {
	// Rates and session detection
	Billing BillingConfig `mapstructure:"billing" yaml:"billing"`

	// Git invocation
	Git GitConfig `mapstructure:"git" yaml:"git"`

	// Diff count cache
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// Estimate ledger
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	Summary SummaryConfig `mapstructure:"summary" yaml:"summary"`
}

// BillingConfig holds the billing rates. Unset rates fall back to the
// billing package defaults.
type BillingConfig struct {
	HourlyRate   *float64      `mapstructure:"hourly_rate" yaml:"hourly_rate,omitempty"`
	LineRate     *float64      `mapstructure:"line_rate" yaml:"line_rate,omitempty"`
	GapThreshold time.Duration `mapstructure:"gap_threshold" yaml:"gap_threshold"`
}

type GitConfig struct {
	Binary   string `mapstructure:"binary" yaml:"binary"`
	RepoPath string `mapstructure:"repo_path" yaml:"repo_path"` // empty = working directory
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

type StorageConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"` // record every estimate
	Type        string `mapstructure:"type" yaml:"type"`       // "sqlite", "postgres"
	LocalPath   string `mapstructure:"local_path" yaml:"local_path"`
	PostgresDSN string `mapstructure:"postgres_dsn" yaml:"postgres_dsn,omitempty"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

type SummaryConfig struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// Default returns default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Billing: BillingConfig{
			GapThreshold: 2 * time.Hour,
		},
		Git: GitConfig{
			Binary: "git",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(homeDir, ".gitprice", "diffs.db"),
		},
		Storage: StorageConfig{
			Type:      "sqlite",
			LocalPath: filepath.Join(homeDir, ".gitprice", "ledger.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Summary: SummaryConfig{
			Concurrency: 4,
		},
	}
}

// Load loads configuration from file, .env files and GITPRICE_* variables
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("billing.gap_threshold", cfg.Billing.GapThreshold)
	v.SetDefault("git.binary", cfg.Git.Binary)
	v.SetDefault("git.repo_path", cfg.Git.RepoPath)
	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.path", cfg.Cache.Path)
	v.SetDefault("storage.enabled", cfg.Storage.Enabled)
	v.SetDefault("storage.type", cfg.Storage.Type)
	v.SetDefault("storage.local_path", cfg.Storage.LocalPath)
	v.SetDefault("storage.postgres_dsn", cfg.Storage.PostgresDSN)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.json", cfg.Logging.JSON)
	v.SetDefault("summary.concurrency", cfg.Summary.Concurrency)

	// Load from environment variables, e.g. GITPRICE_BILLING_HOURLY_RATE
	v.SetEnvPrefix("GITPRICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// rates have no default, so viper only sees them when bound explicitly
	_ = v.BindEnv("billing.hourly_rate")
	_ = v.BindEnv("billing.line_rate")

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".gitprice")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".gitprice"))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Git.RepoPath = expandPath(cfg.Git.RepoPath)
	cfg.Cache.Path = expandPath(cfg.Cache.Path)
	cfg.Storage.LocalPath = expandPath(cfg.Storage.LocalPath)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	// godotenv never overrides variables that are already set, so the
	// first file to define a key wins
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	// Also try loading from home directory
	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".gitprice", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	// Convert struct to map for Viper
	v.Set("billing", c.Billing)
	v.Set("git", c.Git)
	v.Set("cache", c.Cache)
	v.Set("storage", c.Storage)
	v.Set("logging", c.Logging)
	v.Set("summary", c.Summary)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config file
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
