// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/fernwell/pulsecheck/internal/assess"
	"github.com/fernwell/pulsecheck/internal/model"
)

// ReportSummary is the lightweight listing view of a persisted report.
type ReportSummary struct {
	GeneratedAt time.Time
	Unit        model.BusinessUnit
	Grade       string
	Fingerprint string
	ID          int64
	Score       float64
	Percentile  int
}

// ReportStore persists completed assessment reports for the external
// outcome-tracking loop. Survey progress is never stored here.
type ReportStore interface {
	// SaveReport stores a completed report and returns its row ID.
	SaveReport(ctx context.Context, report *assess.Report) (int64, error)
	// GetReport loads a persisted report by row ID.
	GetReport(ctx context.Context, id int64) (*assess.Report, error)
	// ListReports returns summaries of persisted reports, newest first.
	ListReports(ctx context.Context, limit int) ([]ReportSummary, error)
	// Close releases the underlying resources.
	Close() error
}
