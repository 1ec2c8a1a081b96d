package domain

// OpportunityType labels why a topic is worth producing content for.
// Exactly one type is assigned per scored topic.
type OpportunityType string

const (
	// OpportunityCorrection: active misinformation touches this topic.
	OpportunityCorrection OpportunityType = "CORRECTION_OPPORTUNITY"
	// OpportunityLanguageGap: proven in English, absent in Hindi.
	OpportunityLanguageGap OpportunityType = "LANGUAGE_GAP"
	// OpportunityDemandGap: direct audience demand with no local supply.
	OpportunityDemandGap OpportunityType = "DEMAND_GAP"
	// OpportunityProvenTopic: high-view inspiration coverage, untranslated.
	OpportunityProvenTopic OpportunityType = "PROVEN_TOPIC"
	// OpportunityImprovement: already covered locally but demand persists.
	OpportunityImprovement OpportunityType = "IMPROVEMENT_OPPORTUNITY"
	// OpportunityGeneral: no specific signal.
	OpportunityGeneral OpportunityType = "GENERAL"
)

// ScoreDetails records the per-topic evidence behind a gap score, for
// classification and report auditability.
type ScoreDetails struct {
	// QuestionsFound is the number of audience questions that matched.
	QuestionsFound int `json:"questions_found"`

	// EnglishVideos counts matching inspiration-channel videos.
	EnglishVideos int `json:"english_videos"`

	// HindiVideos counts matching hindi-language or competitor videos.
	HindiVideos int `json:"hindi_videos"`

	// InspirationAvgViews is the mean view count of matching
	// inspiration videos, rounded to 2 decimals.
	InspirationAvgViews float64 `json:"inspiration_avg_views"`

	// CorrectionScore is the number of correction seeds that
	// referenced this topic across all detected correction
	// opportunities in the same run.
	CorrectionScore int `json:"correction_score,omitempty"`

	// SampleQuestions holds up to 3 matched question texts,
	// truncated to 100 characters.
	SampleQuestions []string `json:"sample_questions,omitempty"`

	// SampleVideos holds up to 3 matched supply-side video titles.
	SampleVideos []string `json:"sample_videos,omitempty"`
}

// GapScore is the derived demand/supply result for one topic. It is
// computed fresh each run and never mutated afterwards.
type GapScore struct {
	TopicID   string `json:"topic_id"`
	TopicText string `json:"topic_text"`
	Category  string `json:"category"`
	Pillar    string `json:"pillar,omitempty"`

	// DemandScore accumulates question and inspiration-video weight.
	DemandScore float64 `json:"demand_score"`

	// SupplyScore counts existing local/competitor coverage.
	SupplyScore int `json:"supply_score"`

	// GapScore is demand/(supply+1) with bonus multipliers applied,
	// rounded to 2 decimals.
	GapScore float64 `json:"gap_score"`

	OpportunityType OpportunityType `json:"opportunity_type"`
	Details         ScoreDetails    `json:"details"`
}
