package main

import (
	"context"

	"github.com/rohankatakam/gitprice/internal/billing"
	"github.com/rohankatakam/gitprice/internal/cache"
	"github.com/rohankatakam/gitprice/internal/config"
	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/rohankatakam/gitprice/internal/git"
	"github.com/rohankatakam/gitprice/internal/history"
	"github.com/rohankatakam/gitprice/internal/output"
	"github.com/rohankatakam/gitprice/internal/storage"
	"github.com/spf13/cobra"
	bolt "go.etcd.io/bbolt"
)

// pipeline wires the git client, diff cache and billing engine for one run
type pipeline struct {
	client  *git.Client
	diffs   *cache.DiffCache
	cacheDB *bolt.DB
	engine  *billing.Engine
	rates   billing.Rates
	cutoff  int64
	format  output.Format
}

// newPipeline resolves flags over configuration and opens the diff cache.
// Callers must Close the pipeline.
func newPipeline(cmd *cobra.Command, trace bool) (*pipeline, error) {
	result := cfg.Validate()
	if result.HasErrors() {
		return nil, errors.ConfigErrorf(result, "invalid configuration")
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	flags := cmd.Flags()

	formatValue, _ := flags.GetString("format")
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	repoPath := cfg.Git.RepoPath
	if flags.Changed("repo") {
		repoPath, _ = flags.GetString("repo")
	}

	client := git.NewClient(repoPath,
		git.WithBinary(cfg.Git.Binary),
		git.WithLogger(logger),
		git.WithTrace(trace))

	rates := resolveRates(cmd, cfg)

	gap := cfg.Billing.GapThreshold
	if flags.Changed("gap") {
		gap, _ = flags.GetDuration("gap")
		if gap <= 0 {
			return nil, errors.ValidationErrorf("--gap must be positive, got %s", gap)
		}
	}

	cutoff, _ := flags.GetInt64("after")

	p := &pipeline{
		client: client,
		rates:  rates,
		cutoff: cutoff,
		format: format,
	}

	var counter billing.DiffCounter = client
	if cfg.Cache.Enabled {
		db, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			logger.WithError(err).Warn("Diff cache unavailable, counting without it")
		} else {
			p.cacheDB = db
			p.diffs = cache.NewDiffCache(db, client, logger)
			counter = p.diffs
		}
	}

	p.engine = billing.NewEngine(counter, rates, billing.WithGapThreshold(gap))

	logger.WithField("hourly_rate", rates.Hourly).
		WithField("line_rate", rates.Line).
		WithField("gap", p.engine.GapThreshold()).
		WithField("cutoff", cutoff).
		Debug("Billing configured")

	return p, nil
}

// resolveRates applies --per-hour/--per-line over the configured rates
func resolveRates(cmd *cobra.Command, c *config.Config) billing.Rates {
	hourly := c.Billing.HourlyRate
	line := c.Billing.LineRate

	flags := cmd.Flags()
	if flags.Changed("per-hour") {
		v, _ := flags.GetFloat64("per-hour")
		hourly = &v
		// a flag hourly rate re-derives the line rate unless one is given too
		if !flags.Changed("per-line") {
			line = nil
		}
	}
	if flags.Changed("per-line") {
		v, _ := flags.GetFloat64("per-line")
		line = &v
	}

	return billing.ResolveRates(hourly, line)
}

// loadHistory reads the full commit log once
func (p *pipeline) loadHistory(ctx context.Context) (*history.Store, error) {
	if err := p.client.DetectRepo(ctx); err != nil {
		return nil, err
	}
	return history.Load(ctx, p.client)
}

// repoPath returns the repository root, falling back to the configured path
func (p *pipeline) repoPath(ctx context.Context) string {
	if top, err := p.client.TopLevel(ctx); err == nil {
		return top
	}
	return p.client.RepoPath()
}

func (p *pipeline) Close() {
	if p.diffs != nil {
		hits, misses := p.diffs.Stats()
		logger.WithField("hits", hits).WithField("misses", misses).Debug("Diff cache")
	}
	if p.cacheDB != nil {
		if err := p.cacheDB.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close diff cache")
		}
	}
}

// openLedger opens the configured estimate ledger
func openLedger() (*storage.Ledger, error) {
	if result := cfg.ValidateStorage(); result.HasErrors() {
		return nil, errors.ConfigErrorf(result, "invalid storage configuration")
	}

	location := cfg.Storage.LocalPath
	if cfg.Storage.Type == storage.TypePostgres {
		location = cfg.Storage.PostgresDSN
	}

	ledger, err := storage.Open(cfg.Storage.Type, location, logger)
	if err != nil {
		return nil, errors.DatabaseErrorf(err, "open %s ledger", cfg.Storage.Type)
	}
	return ledger, nil
}
