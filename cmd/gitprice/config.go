package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rohankatakam/gitprice/internal/config"
	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gitprice configuration",
	Long:  `View, validate and create gitprice configuration files.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to .gitprice/config.yaml (or --config).

Examples:
  gitprice config init
  gitprice config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Encode(cmd.OutOrStdout(), output.FormatYAML, cfg)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = filepath.Join(".gitprice", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return errors.ValidationErrorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return errors.FileSystemErrorf(err, "write %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	result := cfg.Validate()
	if !cfg.Storage.Enabled {
		storage := cfg.ValidateStorage()
		result.Errors = append(result.Errors, storage.Errors...)
		result.Valid = result.Valid && storage.Valid
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "⚠️  %s\n", warning)
	}
	if result.HasErrors() {
		return errors.ConfigErrorf(result, "invalid configuration")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}
