package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
	"github.com/sehat-labs/gapscan/internal/core/ports/driving"
	"github.com/sehat-labs/gapscan/internal/logger"
)

// Ensure Analysis implements the interface.
var _ driving.AnalysisService = (*Analysis)(nil)

// Analysis orchestrates one content-gap run: load the snapshot,
// detect corrections, score every topic, then rank and bucket the
// results into an immutable report. Partial or missing input data
// degrades to empty results; the run never fails for an incomplete
// snapshot.
type Analysis struct {
	signals  driven.SignalStore
	reports  driven.ReportStore
	matcher  *Matcher
	scorer   *Scorer
	detector *CorrectionDetector
	limits   ReportLimits
}

// NewAnalysis creates an analysis service over the given signal
// store with default thresholds and limits.
func NewAnalysis(signals driven.SignalStore) *Analysis {
	matcher := NewMatcher()
	return &Analysis{
		signals:  signals,
		matcher:  matcher,
		scorer:   NewScorer(matcher),
		detector: NewCorrectionDetector(DefaultCorrectionConfig()),
		limits:   DefaultReportLimits(),
	}
}

// SetReportStore attaches an optional store for finished reports.
func (a *Analysis) SetReportStore(store driven.ReportStore) {
	a.reports = store
}

// SetCorrectionConfig overrides the correction detector thresholds.
func (a *Analysis) SetCorrectionConfig(cfg CorrectionConfig) {
	a.detector = NewCorrectionDetector(cfg)
}

// SetLimits overrides the report section caps.
func (a *Analysis) SetLimits(limits ReportLimits) {
	a.limits = limits
}

// Analyze performs a single-pass scoring, classification and ranking
// run over the current snapshot.
func (a *Analysis) Analyze(ctx context.Context) (*domain.Report, error) {
	logger.Section("Gap Analysis")

	topics := a.loadTopics(ctx)
	videos := a.loadVideos(ctx)
	questions := a.loadQuestions(ctx)
	channels := a.loadChannels(ctx)
	logger.Debug("Snapshot: %d topics, %d videos, %d questions", len(topics), len(videos), len(questions))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Corrections first: their seed counts feed per-topic
	// classification as correction relevance.
	corrections := a.detector.Detect(videos, channels, topics)
	relevance := correctionRelevance(corrections)

	scores := make([]domain.GapScore, 0, len(topics))
	for _, topic := range topics {
		scores = append(scores, a.scorer.Score(topic, questions, videos, relevance[topic.ID]))
	}

	report := BuildReport(scores, corrections, a.limits)
	report.RunID = uuid.New().String()
	report.GeneratedAt = time.Now().UTC()

	logger.Info("Scored %d topics, %d correction opportunities", len(scores), len(corrections))

	if a.reports != nil {
		if err := a.reports.SaveReport(ctx, report); err != nil {
			logger.Warn("Saving report %s: %v", report.RunID, err)
		}
	}

	return report, nil
}

// correctionRelevance counts, per topic, how many correction seeds
// referenced it across all detected opportunities.
func correctionRelevance(corrections []domain.CorrectionOpportunity) map[string]int {
	relevance := make(map[string]int)
	for _, c := range corrections {
		for _, seed := range c.CorrectionSeeds {
			relevance[seed.SeedID]++
		}
	}
	return relevance
}

// Collection loaders degrade to empty on any store error: a missing
// or unreadable collection is never fatal (the report reader expects
// a complete structure regardless of upstream completeness).

func (a *Analysis) loadTopics(ctx context.Context) []domain.Topic {
	topics, err := a.signals.Topics(ctx)
	if err != nil {
		logger.Warn("Loading topics: %v (continuing with empty catalog)", err)
		return nil
	}
	return topics
}

func (a *Analysis) loadVideos(ctx context.Context) []domain.Video {
	videos, err := a.signals.Videos(ctx)
	if err != nil {
		logger.Warn("Loading videos: %v (continuing without video signals)", err)
		return nil
	}
	return videos
}

func (a *Analysis) loadQuestions(ctx context.Context) []domain.Question {
	questions, err := a.signals.Questions(ctx)
	if err != nil {
		logger.Warn("Loading questions: %v (continuing without question signals)", err)
		return nil
	}
	return questions
}

func (a *Analysis) loadChannels(ctx context.Context) *domain.ChannelCatalog {
	channels, err := a.signals.Channels(ctx)
	if err != nil {
		logger.Warn("Loading channel profiles: %v (continuing without correction detection)", err)
		return nil
	}
	return channels
}
