// Package billing turns one author's commit history into pay.
//
// Consecutive commits closer together than the gap threshold are treated as
// one working session and billed by elapsed time. A larger gap starts a new
// session; the transition into it is billed by the number of lines added
// between the two commits instead.
package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rohankatakam/gitprice/internal/models"
)

// DefaultGapThreshold separates two working sessions
const DefaultGapThreshold = 2 * time.Hour

// DiffCounter counts added lines between two commits
type DiffCounter interface {
	AddedLines(ctx context.Context, older, newer string) (int, error)
}

// Engine computes reports for commit sequences
type Engine struct {
	diffs DiffCounter
	rates Rates
	gap   time.Duration
}

// Option configures an Engine
type Option func(*Engine)

// WithGapThreshold overrides DefaultGapThreshold. Non-positive values are ignored.
func WithGapThreshold(gap time.Duration) Option {
	return func(e *Engine) {
		if gap > 0 {
			e.gap = gap
		}
	}
}

// NewEngine creates an Engine that bills with rates and asks diffs for line counts
func NewEngine(diffs DiffCounter, rates Rates, opts ...Option) *Engine {
	e := &Engine{
		diffs: diffs,
		rates: rates,
		gap:   DefaultGapThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rates returns the rates the engine bills with
func (e *Engine) Rates() Rates {
	return e.rates
}

// GapThreshold returns the session gap threshold
func (e *Engine) GapThreshold() time.Duration {
	return e.gap
}

// Estimate bills commits, which must belong to one author and be sorted by
// ascending timestamp.
//
// Commits before cutoff are not billed but still become the previous commit
// for the next transition. The first commit only seeds the session. A gap
// equal to the threshold still counts as the same session.
func (e *Engine) Estimate(ctx context.Context, commits []models.Commit, cutoff int64) (*models.Report, error) {
	report := &models.Report{}
	gapSeconds := int64(e.gap / time.Second)

	var (
		lastTimestamp int64
		lastCommit    string
		hasLast       bool
		pay           float64
	)

	for _, commit := range commits {
		elapsed := commit.Timestamp - lastTimestamp

		switch {
		case commit.Timestamp < cutoff:
			// not billed

		case !hasLast:
			// first commit seeds the session

		case elapsed > gapSeconds:
			lines, err := e.diffs.AddedLines(ctx, lastCommit, commit.ID)
			if err != nil {
				return nil, fmt.Errorf("count lines %s..%s: %w", lastCommit, commit.ID, err)
			}
			eventPay := float64(lines) * e.rates.Line
			report.TotalLines += lines
			pay += eventPay
			report.Events = append(report.Events, models.BillingEvent{
				Kind:          models.EventLines,
				From:          lastCommit,
				To:            commit.ID,
				FromTimestamp: lastTimestamp,
				ToTimestamp:   commit.Timestamp,
				Elapsed:       elapsed,
				Lines:         lines,
				Pay:           eventPay,
			})

		default:
			hours := float64(elapsed) / 3600
			eventPay := hours * e.rates.Hourly
			report.TotalHours += hours
			pay += eventPay
			report.Events = append(report.Events, models.BillingEvent{
				Kind:          models.EventHourly,
				From:          lastCommit,
				To:            commit.ID,
				FromTimestamp: lastTimestamp,
				ToTimestamp:   commit.Timestamp,
				Elapsed:       elapsed,
				Hours:         hours,
				Pay:           eventPay,
			})
		}

		lastTimestamp = commit.Timestamp
		lastCommit = commit.ID
		hasLast = true
	}

	report.Pay = round(pay, 2)
	report.TotalHours = round(report.TotalHours, 4)
	return report, nil
}

// round rounds the exact binary value to places decimals. Scaling first
// would turn 0.07499... into 0.075 and round it up.
func round(value float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
