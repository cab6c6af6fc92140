package main

import (
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Estimate every author",
	Long: `Run an estimate for every author in the repository and print one row each.

Authors are estimated concurrently (summary.concurrency, default 4) using the
same rates, gap and --after cutoff.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := newPipeline(cmd, false)
	if err != nil {
		return err
	}
	defer p.Close()

	store, err := p.loadHistory(ctx)
	if err != nil {
		return err
	}

	authors := store.Authors()
	rows := make([]output.SummaryRow, len(authors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Summary.Concurrency)
	for i, a := range authors {
		i := i
		name := a.Author
		g.Go(func() error {
			// exact display string, so authors sharing a name stay separate
			commits := store.ForAuthor(name)
			report, err := p.engine.Estimate(gctx, commits, p.cutoff)
			if err != nil {
				return err
			}
			rows[i] = output.SummaryRow{Author: name, Commits: len(commits), Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.WithField("authors", len(rows)).Debug("Summary complete")

	if p.format != output.FormatText {
		return output.Encode(cmd.OutOrStdout(), p.format, rows)
	}
	output.FormatSummary(cmd.OutOrStdout(), rows)
	return nil
}
