// Package storage persists completed assessment reports in SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fernwell/pulsecheck/internal/assess"
	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/fernwell/pulsecheck/internal/service"

	"github.com/mattn/go-sqlite3" // SQLite driver
)

// Ensure SQLiteStorage implements the ReportStore interface.
var _ service.ReportStore = (*SQLiteStorage)(nil)

// SQLiteStorage implements service.ReportStore using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance and runs migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrInvalidConfig)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db, dbPath: dbPath}
	if err := s.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveReport stores a completed report as a JSON document alongside its
// indexed headline figures. Busy-database errors are retried with backoff.
func (s *SQLiteStorage) SaveReport(ctx context.Context, report *assess.Report) (int64, error) {
	if report == nil {
		return 0, fmt.Errorf("report is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}

	var id int64
	err = common.WithRetry(ctx, func() error {
		result, execErr := s.db.ExecContext(ctx, `
			INSERT INTO reports (unit, fingerprint, overall_score, grade, percentile, report_json, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(report.Unit),
			report.Fingerprint,
			report.Dimensions.Overall.Score,
			report.Dimensions.Overall.Grade,
			report.Percentile.Percentile,
			string(payload),
			report.GeneratedAt,
		)
		if execErr != nil {
			return wrapBusy(execErr)
		}
		id, execErr = result.LastInsertId()
		return execErr
	}, common.RetryOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport loads a persisted report by row ID.
func (s *SQLiteStorage) GetReport(ctx context.Context, id int64) (*assess.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM reports WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %d: %w", id, err)
	}

	var report assess.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("%w: report %d is not decodable: %v", common.ErrDatabaseCorrupted, id, err)
	}
	return &report, nil
}

// ListReports returns summaries of persisted reports, newest first.
func (s *SQLiteStorage) ListReports(ctx context.Context, limit int) ([]service.ReportSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, unit, fingerprint, overall_score, grade, percentile, created_at
		FROM reports
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var summaries []service.ReportSummary
	for rows.Next() {
		var (
			summary service.ReportSummary
			unit    string
			created time.Time
		)
		if err := rows.Scan(&summary.ID, &unit, &summary.Fingerprint,
			&summary.Score, &summary.Grade, &summary.Percentile, &created); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summary.Unit = model.BusinessUnit(unit)
		summary.GeneratedAt = created
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return summaries, nil
}

// wrapBusy marks SQLITE_BUSY/LOCKED errors retryable so WithRetry backs off
// instead of failing immediately.
func wrapBusy(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
		return &common.RetryableError{Err: err, Retryable: true}
	}
	return &common.RetryableError{Err: err, Retryable: false}
}
