package services

import (
	"sort"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// ReportLimits caps the ranked report sections.
type ReportLimits struct {
	TopGaps       int
	QuickWins     int
	StrategicBets int
	Corrections   int
}

// DefaultReportLimits returns the caps the downstream consumer
// expects.
func DefaultReportLimits() ReportLimits {
	return ReportLimits{
		TopGaps:       50,
		QuickWins:     10,
		StrategicBets: 10,
		Corrections:   20,
	}
}

// Bucket thresholds.
const (
	// quickWinMinAvgViews: proven inspiration reach for a quick win.
	quickWinMinAvgViews = 50000.0
	// strategicBetMinQuestions: direct demand for a strategic bet.
	strategicBetMinQuestions = 5
)

// uncategorized groups topics whose catalog record carries no
// category.
const uncategorized = "uncategorized"

// BuildReport ranks, groups and buckets the run results. The sort is
// stable and keyed on gap score only, so ties preserve catalog order
// and identical inputs always produce an identical report.
func BuildReport(
	scores []domain.GapScore,
	corrections []domain.CorrectionOpportunity,
	limits ReportLimits,
) *domain.Report {
	ranked := make([]domain.GapScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GapScore > ranked[j].GapScore
	})

	byType := make(map[domain.OpportunityType][]domain.GapScore)
	byCategory := make(map[string][]domain.GapScore)
	for _, gs := range ranked {
		byType[gs.OpportunityType] = append(byType[gs.OpportunityType], gs)

		category := gs.Category
		if category == "" {
			category = uncategorized
		}
		byCategory[category] = append(byCategory[category], gs)
	}

	// Slices are non-nil so the report marshals [] rather than null.
	quickWins := make([]domain.GapScore, 0, limits.QuickWins)
	for _, gs := range ranked {
		if len(quickWins) >= limits.QuickWins {
			break
		}
		if gs.OpportunityType == domain.OpportunityLanguageGap && gs.Details.InspirationAvgViews > quickWinMinAvgViews {
			quickWins = append(quickWins, gs)
		}
	}

	strategicBets := make([]domain.GapScore, 0, limits.StrategicBets)
	for _, gs := range ranked {
		if len(strategicBets) >= limits.StrategicBets {
			break
		}
		if gs.Details.QuestionsFound >= strategicBetMinQuestions {
			strategicBets = append(strategicBets, gs)
		}
	}

	top := ranked
	if len(top) > limits.TopGaps {
		top = top[:limits.TopGaps]
	}

	if corrections == nil {
		corrections = []domain.CorrectionOpportunity{}
	} else if len(corrections) > limits.Corrections {
		corrections = corrections[:limits.Corrections]
	}

	return &domain.Report{
		TotalGaps:               len(ranked),
		Top50Gaps:               top,
		ByOpportunityType:       byType,
		ByCategory:              byCategory,
		QuickWins:               quickWins,
		StrategicBets:           strategicBets,
		CorrectionOpportunities: corrections,
	}
}
