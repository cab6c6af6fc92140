package models

import (
	"time"
)

// Commit represents a git commit as read from the log
type Commit struct {
	ID        string `json:"id" yaml:"id" db:"id"`
	Author    string `json:"author" yaml:"author" db:"author"` // display string, e.g. "Jane Doe <jane@example.com>"
	Timestamp int64  `json:"timestamp" yaml:"timestamp" db:"timestamp"`
}

// Time returns the commit timestamp as a time.Time in UTC
func (c Commit) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// EventKind says how a transition between two commits was billed
type EventKind string

const (
	EventHourly EventKind = "hourly"
	EventLines  EventKind = "lines"
)

// BillingEvent is one billed transition between two consecutive commits
type BillingEvent struct {
	Kind          EventKind `json:"kind" yaml:"kind"`
	From          string    `json:"from,omitempty" yaml:"from,omitempty"`
	To            string    `json:"to,omitempty" yaml:"to,omitempty"`
	FromTimestamp int64     `json:"from_timestamp" yaml:"from_timestamp"`
	ToTimestamp   int64     `json:"to_timestamp" yaml:"to_timestamp"`
	Elapsed       int64     `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Hours         float64   `json:"hours,omitempty" yaml:"hours,omitempty"`
	Lines         int       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Pay           float64   `json:"pay" yaml:"pay"`
}

// Report is the result of one billing run
type Report struct {
	Pay        float64        `json:"pay" yaml:"pay"`
	TotalHours float64        `json:"total_time" yaml:"total_time"`
	TotalLines int            `json:"total_lines" yaml:"total_lines"`
	Events     []BillingEvent `json:"events,omitempty" yaml:"events,omitempty"`
}

// AuthorStats summarizes one author's commits
type AuthorStats struct {
	Author       string    `json:"author" yaml:"author"`
	TotalCommits int       `json:"total_commits" yaml:"total_commits"`
	FirstCommit  time.Time `json:"first_commit" yaml:"first_commit"`
	LastCommit   time.Time `json:"last_commit" yaml:"last_commit"`
}

// Estimate is a recorded billing run
type Estimate struct {
	ID         string    `json:"id" yaml:"id" db:"id"`
	RepoPath   string    `json:"repo_path" yaml:"repo_path" db:"repo_path"`
	Author     string    `json:"author" yaml:"author" db:"author"`
	Cutoff     int64     `json:"cutoff" yaml:"cutoff" db:"cutoff"`
	HourlyRate float64   `json:"hourly_rate" yaml:"hourly_rate" db:"hourly_rate"`
	LineRate   float64   `json:"line_rate" yaml:"line_rate" db:"line_rate"`
	Pay        float64   `json:"pay" yaml:"pay" db:"pay"`
	TotalHours float64   `json:"total_hours" yaml:"total_hours" db:"total_hours"`
	TotalLines int       `json:"total_lines" yaml:"total_lines" db:"total_lines"`
	Commits    int       `json:"commits" yaml:"commits" db:"commits"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at" db:"created_at"`
}
