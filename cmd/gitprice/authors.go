package main

import (
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List commit authors",
	Long:  `List every author in the repository with their commit count and first and last commit times.`,
	Args:  cobra.NoArgs,
	RunE:  runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd, false)
	if err != nil {
		return err
	}
	defer p.Close()

	store, err := p.loadHistory(cmd.Context())
	if err != nil {
		return err
	}

	authors := store.Authors()
	if p.format != output.FormatText {
		return output.Encode(cmd.OutOrStdout(), p.format, authors)
	}
	output.FormatAuthors(cmd.OutOrStdout(), authors)
	return nil
}
