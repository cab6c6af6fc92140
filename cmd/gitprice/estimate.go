package main

import (
	"context"
	"time"

	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/rohankatakam/gitprice/internal/models"
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	author    string
	verbosity int
	record    bool
	convert   string
)

func init() {
	rootCmd.Flags().StringVar(&author, "author", "", "author name, email or \"Name <email>\" to bill")
	rootCmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "breakdown bitmask: 1 hourly, 2 lines, 4 commit ids, 8 raw git output")
	rootCmd.Flags().BoolVar(&record, "record", false, "save the estimate to the ledger")
	rootCmd.Flags().StringVar(&convert, "convert", "", "print the Unix timestamp of a git log date and exit")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("convert") {
		runConvert(cmd.OutOrStdout(), convert)
		return nil
	}
	if author == "" {
		return errors.ValidationError("--author is required")
	}

	mask := output.ParseVerbosity(verbosity)
	if mask.Has(output.ShowRaw) {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx := cmd.Context()

	p, err := newPipeline(cmd, mask.Has(output.ShowRaw))
	if err != nil {
		return err
	}
	defer p.Close()

	store, err := p.loadHistory(ctx)
	if err != nil {
		return err
	}

	commits := store.ForAuthor(author)
	logger.WithField("author", author).
		WithField("commits", len(commits)).
		WithField("total", store.Len()).
		Debug("Filtered history")
	if len(commits) == 0 {
		logger.WithField("author", author).Warn("No commits found for author")
	}

	report, err := p.engine.Estimate(ctx, commits, p.cutoff)
	if err != nil {
		return err
	}

	result := &output.Result{
		Author:       author,
		Commits:      len(commits),
		Cutoff:       p.cutoff,
		HourlyRate:   p.rates.Hourly,
		LineRate:     p.rates.Line,
		GapThreshold: p.engine.GapThreshold(),
		Report:       report,
	}
	if err := output.NewFormatter(p.format, mask).Format(cmd.OutOrStdout(), result); err != nil {
		return errors.InternalErrorf("write report: %v", err)
	}

	if record || cfg.Storage.Enabled {
		if err := recordEstimate(ctx, p, result); err != nil {
			if record {
				return err
			}
			logger.WithError(err).Warn("Failed to record estimate")
		}
	}
	return nil
}

// recordEstimate appends the result to the ledger
func recordEstimate(ctx context.Context, p *pipeline, result *output.Result) error {
	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	estimate := &models.Estimate{
		RepoPath:   p.repoPath(ctx),
		Author:     result.Author,
		Cutoff:     result.Cutoff,
		HourlyRate: result.HourlyRate,
		LineRate:   result.LineRate,
		Pay:        result.Report.Pay,
		TotalHours: result.Report.TotalHours,
		TotalLines: result.Report.TotalLines,
		Commits:    result.Commits,
		CreatedAt:  time.Now().UTC(),
	}
	if err := ledger.Record(ctx, estimate); err != nil {
		return errors.DatabaseErrorf(err, "record estimate")
	}

	logger.WithField("id", estimate.ID).Info("Recorded estimate")
	return nil
}
