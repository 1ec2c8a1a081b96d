package domain

import "time"

// Report is the immutable output of one analysis run, shaped for the
// downstream calendar/export consumer. All lists are pre-ranked and
// pre-truncated; field names are part of the consumer contract.
type Report struct {
	// RunID identifies this run. Metadata only; never a scoring input.
	RunID string `json:"run_id"`

	// GeneratedAt is the wall-clock time of the run. Metadata only.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalGaps is the number of topics scored before truncation.
	TotalGaps int `json:"total_gaps"`

	// Top50Gaps holds the highest-gap topics, at most 50.
	Top50Gaps []GapScore `json:"top_50_gaps"`

	// ByOpportunityType groups every scored topic by its label.
	ByOpportunityType map[OpportunityType][]GapScore `json:"by_opportunity_type"`

	// ByCategory groups every scored topic by catalog category.
	ByCategory map[string][]GapScore `json:"by_category"`

	// QuickWins: language-gap topics with strong proven views, <=10.
	QuickWins []GapScore `json:"quick_wins"`

	// StrategicBets: topics with heavy direct question demand, <=10.
	StrategicBets []GapScore `json:"strategic_bets"`

	// CorrectionOpportunities is sorted by priority, <=20.
	CorrectionOpportunities []CorrectionOpportunity `json:"correction_opportunities"`
}
