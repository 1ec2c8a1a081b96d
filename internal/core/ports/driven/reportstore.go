package driven

import (
	"context"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// ReportStore persists finished run reports so past runs can be
// compared. Persistence is optional: the engine produces a complete
// report whether or not a store is attached.
type ReportStore interface {
	// SaveReport stores a finished report keyed by run ID.
	SaveReport(ctx context.Context, report *domain.Report) error

	// GetReport retrieves a report by run ID.
	GetReport(ctx context.Context, runID string) (*domain.Report, error)

	// ListReports returns the most recent reports, newest first,
	// up to limit. A non-positive limit yields no reports.
	ListReports(ctx context.Context, limit int) ([]domain.Report, error)
}
