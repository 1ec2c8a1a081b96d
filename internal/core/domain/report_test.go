package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The report field names are a contract with the downstream
// calendar/export consumer; renaming them is a breaking change.
func TestReport_JSONFieldNames(t *testing.T) {
	report := Report{
		RunID:             "run-1",
		GeneratedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalGaps:         1,
		Top50Gaps:         []GapScore{{TopicID: "t1"}},
		ByOpportunityType: map[OpportunityType][]GapScore{OpportunityGeneral: {{TopicID: "t1"}}},
		ByCategory:        map[string][]GapScore{"diabetes": {{TopicID: "t1"}}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"run_id", "generated_at", "total_gaps", "top_50_gaps",
		"by_opportunity_type", "by_category", "quick_wins",
		"strategic_bets", "correction_opportunities",
	} {
		assert.Contains(t, decoded, key)
	}
}

func TestGapScore_JSONDetails(t *testing.T) {
	gs := GapScore{
		TopicID:         "t1",
		TopicText:       "sglt2 inhibitors heart failure",
		Category:        "cardiology",
		DemandScore:     8,
		GapScore:        12,
		OpportunityType: OpportunityLanguageGap,
		Details: ScoreDetails{
			QuestionsFound:      1,
			EnglishVideos:       1,
			InspirationAvgViews: 300000,
			SampleQuestions:     []string{"what do sglt2 inhibitors do"},
		},
	}

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "LANGUAGE_GAP", decoded["opportunity_type"])

	details, ok := decoded["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "questions_found")
	assert.Contains(t, details, "english_videos")
	assert.Contains(t, details, "hindi_videos")
	assert.Contains(t, details, "inspiration_avg_views")
}
