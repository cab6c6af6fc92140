package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rohankatakam/gitprice/internal/models"
	"github.com/sirupsen/logrus"
)

// Supported ledger backends
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Ledger records finished estimates so they can be listed later
type Ledger struct {
	db     *sqlx.DB
	logger *logrus.Logger
}

// Open connects to the ledger backend. location is a file path for sqlite
// and a DSN for postgres.
func Open(kind, location string, logger *logrus.Logger) (*Ledger, error) {
	var db *sqlx.DB
	var err error

	switch kind {
	case TypeSQLite, "":
		if err := os.MkdirAll(filepath.Dir(location), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		db, err = sqlx.Connect("sqlite3", location)
		if err != nil {
			return nil, fmt.Errorf("connect to sqlite: %w", err)
		}
		db.Exec("PRAGMA journal_mode = WAL")

	case TypePostgres:
		db, err = sqlx.Connect("postgres", location)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

	default:
		return nil, fmt.Errorf("unsupported storage type %q", kind)
	}

	return NewLedger(db, logger)
}

// NewLedger wraps an open database and makes sure the schema exists
func NewLedger(db *sqlx.DB, logger *logrus.Logger) (*Ledger, error) {
	l := &Ledger{
		db:     db,
		logger: logger,
	}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return l, nil
}

func (l *Ledger) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS estimates (
		id TEXT PRIMARY KEY,
		repo_path TEXT NOT NULL,
		author TEXT NOT NULL,
		cutoff BIGINT NOT NULL,
		hourly_rate DOUBLE PRECISION NOT NULL,
		line_rate DOUBLE PRECISION NOT NULL,
		pay DOUBLE PRECISION NOT NULL,
		total_hours DOUBLE PRECISION NOT NULL,
		total_lines INTEGER NOT NULL,
		commits INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := l.db.Exec(schema); err != nil {
		return err
	}

	_, err := l.db.Exec(`CREATE INDEX IF NOT EXISTS idx_estimates_author ON estimates(author)`)
	return err
}

// Close closes the database connection
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores an estimate, filling in its ID and creation time when unset
func (l *Ledger) Record(ctx context.Context, estimate *models.Estimate) error {
	if estimate.ID == "" {
		estimate.ID = uuid.New().String()
	}
	if estimate.CreatedAt.IsZero() {
		estimate.CreatedAt = time.Now().UTC()
	}

	query := l.db.Rebind(`
		INSERT INTO estimates
		(id, repo_path, author, cutoff, hourly_rate, line_rate,
		 pay, total_hours, total_lines, commits, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := l.db.ExecContext(ctx, query,
		estimate.ID, estimate.RepoPath, estimate.Author, estimate.Cutoff,
		estimate.HourlyRate, estimate.LineRate, estimate.Pay,
		estimate.TotalHours, estimate.TotalLines, estimate.Commits, estimate.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert estimate: %w", err)
	}

	l.logger.WithFields(logrus.Fields{
		"id":     estimate.ID,
		"author": estimate.Author,
		"pay":    estimate.Pay,
	}).Debug("Recorded estimate")
	return nil
}

// List returns recorded estimates, newest first. An empty author lists all.
func (l *Ledger) List(ctx context.Context, author string, limit int) ([]models.Estimate, error) {
	if limit <= 0 {
		limit = 20
	}

	var estimates []models.Estimate
	var err error
	if author == "" {
		query := l.db.Rebind(`SELECT * FROM estimates ORDER BY created_at DESC LIMIT ?`)
		err = l.db.SelectContext(ctx, &estimates, query, limit)
	} else {
		query := l.db.Rebind(`SELECT * FROM estimates WHERE author = ? ORDER BY created_at DESC LIMIT ?`)
		err = l.db.SelectContext(ctx, &estimates, query, author, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	return estimates, nil
}
