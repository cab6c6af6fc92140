package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationResult holds validation results
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(format string, args ...interface{}) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning to the validation result
func (vr *ValidationResult) AddWarning(format string, args ...interface{}) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any errors
func (vr *ValidationResult) HasErrors() bool {
	return !vr.Valid || len(vr.Errors) > 0
}

// Error returns a formatted error message
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Configuration validation failed:\n")
	for _, err := range vr.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err))
	}

	if len(vr.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warn := range vr.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn))
		}
	}

	return sb.String()
}

// Validate checks the configuration values needed to run an estimate.
// Storage settings are checked only when storage.enabled is set.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if c.Billing.HourlyRate != nil && *c.Billing.HourlyRate < 0 {
		result.AddError("billing.hourly_rate must not be negative (got %g)", *c.Billing.HourlyRate)
	}
	if c.Billing.LineRate != nil && *c.Billing.LineRate < 0 {
		result.AddError("billing.line_rate must not be negative (got %g)", *c.Billing.LineRate)
	}
	if c.Billing.GapThreshold <= 0 {
		result.AddError("billing.gap_threshold must be positive (got %s)", c.Billing.GapThreshold)
	}

	if c.Git.Binary == "" {
		result.AddError("git.binary must not be empty")
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		result.AddWarning("cache.enabled is set but cache.path is empty; diffs will not be cached")
	}

	// storage is only opened when recording or listing estimates
	if c.Storage.Enabled {
		c.validateStorage(result)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		result.AddError("logging.level %q is not a valid level", c.Logging.Level)
	}

	if c.Summary.Concurrency < 1 {
		result.AddError("summary.concurrency must be at least 1 (got %d)", c.Summary.Concurrency)
	}

	return result
}

// ValidateStorage checks the ledger settings
func (c *Config) ValidateStorage() *ValidationResult {
	result := &ValidationResult{Valid: true}
	c.validateStorage(result)
	return result
}

func (c *Config) validateStorage(result *ValidationResult) {
	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.LocalPath == "" {
			result.AddError("storage.local_path is required for sqlite storage")
		}
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			result.AddError("storage.postgres_dsn is required for postgres storage")
		}
	default:
		result.AddError("storage.type must be sqlite or postgres (got %q)", c.Storage.Type)
	}
}
