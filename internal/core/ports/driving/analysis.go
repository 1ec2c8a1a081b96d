// Package driving defines the interfaces external actors use to
// drive the engine.
package driving

import (
	"context"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// AnalysisService runs the content-gap analysis over the current
// signal snapshot and returns one immutable report.
type AnalysisService interface {
	// Analyze performs a single-pass scoring, classification and
	// ranking run. Partial or missing input data degrades to empty
	// results; Analyze does not fail for an incomplete snapshot.
	Analyze(ctx context.Context) (*domain.Report, error)
}
