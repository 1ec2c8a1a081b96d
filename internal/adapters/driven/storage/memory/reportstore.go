package memory

import (
	"context"
	"sync"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	reports []domain.Report
	byRunID map[string]int
}

// NewReportStore creates an empty in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{byRunID: make(map[string]int)}
}

// SaveReport stores a finished report keyed by run ID.
func (s *ReportStore) SaveReport(_ context.Context, report *domain.Report) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byRunID[report.RunID]; ok {
		s.reports[i] = *report
		return nil
	}
	s.byRunID[report.RunID] = len(s.reports)
	s.reports = append(s.reports, *report)
	return nil
}

// GetReport retrieves a report by run ID.
func (s *ReportStore) GetReport(_ context.Context, runID string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byRunID[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	report := s.reports[i]
	return &report, nil
}

// ListReports returns the most recent reports, newest first.
func (s *ReportStore) ListReports(_ context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.reports) {
		limit = len(s.reports)
	}
	out := make([]domain.Report, 0, limit)
	for i := len(s.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.reports[i])
	}
	return out, nil
}
