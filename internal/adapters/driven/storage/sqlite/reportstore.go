package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
)

// reportStore implements driven.ReportStore. Reports are stored as
// whole JSON payloads keyed by run ID: past runs are read back for
// comparison, never queried field by field.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// SaveReport stores a finished report keyed by run ID.
func (s *reportStore) SaveReport(ctx context.Context, report *domain.Report) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO reports (run_id, generated_at, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			generated_at = excluded.generated_at,
			payload = excluded.payload
	`, report.RunID, report.GeneratedAt, string(payload))

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by run ID.
func (s *reportStore) GetReport(ctx context.Context, runID string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT payload FROM reports WHERE run_id = ?", runID)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("unmarshaling report: %w", err)
	}

	return &report, nil
}

// ListReports returns the most recent reports, newest first.
func (s *reportStore) ListReports(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT payload FROM reports
		ORDER BY generated_at DESC, run_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report //nolint:prealloc // size unknown from query
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}

		var report domain.Report
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("unmarshaling report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}
