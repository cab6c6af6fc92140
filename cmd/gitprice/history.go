package main

import (
	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded estimates",
	Long: `List estimates saved with --record (or storage.enabled), newest first.

Examples:
  gitprice history
  gitprice history --author jane@example.com --limit 5 --format json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("author", "", "only show estimates for this author")
	historyCmd.Flags().IntP("limit", "n", 20, "max estimates to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	authorFilter, _ := cmd.Flags().GetString("author")
	limit, _ := cmd.Flags().GetInt("limit")

	formatValue, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return errors.ValidationError(err.Error())
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	estimates, err := ledger.List(cmd.Context(), authorFilter, limit)
	if err != nil {
		return errors.DatabaseErrorf(err, "list estimates")
	}

	if format != output.FormatText {
		return output.Encode(cmd.OutOrStdout(), format, estimates)
	}
	output.FormatHistory(cmd.OutOrStdout(), estimates)
	return nil
}
