package domain

// CorrectionSeed points a correction opportunity at a catalog topic
// that can carry the correcting content.
type CorrectionSeed struct {
	// SeedID is the ID of the matched catalog topic.
	SeedID string `json:"seed_id"`

	// Idea is the topic text.
	Idea string `json:"idea"`

	// Category is the topic category.
	Category string `json:"category"`

	// NarrativeMatch names the promoted narrative that made this
	// topic's category eligible.
	NarrativeMatch string `json:"narrative_match"`
}

// ContentFormat is a suggested production format for a correction.
type ContentFormat struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Suggested format types, ordered roughly by production effort.
const (
	FormatDirectResponse    = "direct_response"
	FormatEvidenceSynthesis = "evidence_synthesis"
	FormatMythVsFact        = "myth_vs_fact_short"
	FormatHindiAdaptation   = "hindi_adaptation"
)

// CorrectionOpportunity flags a high-reach belief-seeder video whose
// promoted narratives can be countered with catalog topics. Computed
// fresh each run; persistence is a collaborator concern.
type CorrectionOpportunity struct {
	SourceVideo        Video            `json:"source_video"`
	NarrativesPromoted []string         `json:"narratives_promoted"`
	CorrectionSeeds    []CorrectionSeed `json:"correction_seeds"`

	// PriorityScore is views/10000 multiplied by the number of
	// narratives promoted, rounded to 2 decimals.
	PriorityScore float64 `json:"priority_score"`

	SuggestedFormats []ContentFormat `json:"suggested_formats"`
}
