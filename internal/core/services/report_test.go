package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

func gapScoreN(id string, score float64, opp domain.OpportunityType) domain.GapScore {
	return domain.GapScore{
		TopicID:         id,
		TopicText:       id,
		Category:        "diabetes",
		GapScore:        score,
		OpportunityType: opp,
	}
}

func TestBuildReport_RankingStable(t *testing.T) {
	scores := []domain.GapScore{
		gapScoreN("t1", 2.0, domain.OpportunityGeneral),
		gapScoreN("t2", 5.0, domain.OpportunityGeneral),
		gapScoreN("t3", 5.0, domain.OpportunityGeneral),
		gapScoreN("t4", 1.0, domain.OpportunityGeneral),
	}

	report := BuildReport(scores, nil, DefaultReportLimits())

	require.Len(t, report.Top50Gaps, 4)
	assert.Equal(t, "t2", report.Top50Gaps[0].TopicID)
	// Tie preserves catalog order.
	assert.Equal(t, "t3", report.Top50Gaps[1].TopicID)
	assert.Equal(t, "t1", report.Top50Gaps[2].TopicID)
	assert.Equal(t, 4, report.TotalGaps)
}

func TestBuildReport_Truncation(t *testing.T) {
	var scores []domain.GapScore
	for i := 0; i < 60; i++ {
		scores = append(scores, gapScoreN(fmt.Sprintf("t%d", i), float64(i), domain.OpportunityGeneral))
	}

	report := BuildReport(scores, nil, DefaultReportLimits())

	assert.Len(t, report.Top50Gaps, 50)
	assert.Equal(t, 60, report.TotalGaps)
	// Grouping covers every scored topic, not just the top 50.
	assert.Len(t, report.ByOpportunityType[domain.OpportunityGeneral], 60)
}

func TestBuildReport_QuickWins(t *testing.T) {
	strong := gapScoreN("t1", 9.0, domain.OpportunityLanguageGap)
	strong.Details.InspirationAvgViews = 80000

	weak := gapScoreN("t2", 8.0, domain.OpportunityLanguageGap)
	weak.Details.InspirationAvgViews = 40000

	wrongType := gapScoreN("t3", 7.0, domain.OpportunityDemandGap)
	wrongType.Details.InspirationAvgViews = 90000

	report := BuildReport([]domain.GapScore{strong, weak, wrongType}, nil, DefaultReportLimits())

	require.Len(t, report.QuickWins, 1)
	assert.Equal(t, "t1", report.QuickWins[0].TopicID)

	// Quick wins are a subset of the language-gap group.
	for _, gs := range report.QuickWins {
		assert.Equal(t, domain.OpportunityLanguageGap, gs.OpportunityType)
		assert.Greater(t, gs.Details.InspirationAvgViews, quickWinMinAvgViews)
	}
}

func TestBuildReport_StrategicBets(t *testing.T) {
	hot := gapScoreN("t1", 3.0, domain.OpportunityImprovement)
	hot.Details.QuestionsFound = 6

	cold := gapScoreN("t2", 9.0, domain.OpportunityGeneral)
	cold.Details.QuestionsFound = 4

	report := BuildReport([]domain.GapScore{hot, cold}, nil, DefaultReportLimits())

	require.Len(t, report.StrategicBets, 1)
	assert.Equal(t, "t1", report.StrategicBets[0].TopicID)
}

func TestBuildReport_BucketCaps(t *testing.T) {
	var scores []domain.GapScore
	for i := 0; i < 15; i++ {
		gs := gapScoreN(fmt.Sprintf("t%d", i), float64(i), domain.OpportunityLanguageGap)
		gs.Details.InspirationAvgViews = 100000
		gs.Details.QuestionsFound = 8
		scores = append(scores, gs)
	}

	report := BuildReport(scores, nil, DefaultReportLimits())

	assert.Len(t, report.QuickWins, 10)
	assert.Len(t, report.StrategicBets, 10)
}

func TestBuildReport_CorrectionTruncation(t *testing.T) {
	var corrections []domain.CorrectionOpportunity
	for i := 0; i < 25; i++ {
		corrections = append(corrections, domain.CorrectionOpportunity{
			PriorityScore: float64(25 - i),
		})
	}

	report := BuildReport(nil, corrections, DefaultReportLimits())

	assert.Len(t, report.CorrectionOpportunities, 20)
}

func TestBuildReport_ByCategory(t *testing.T) {
	a := gapScoreN("t1", 1.0, domain.OpportunityGeneral)
	b := gapScoreN("t2", 2.0, domain.OpportunityGeneral)
	b.Category = "cardiology"
	c := gapScoreN("t3", 3.0, domain.OpportunityGeneral)
	c.Category = ""

	report := BuildReport([]domain.GapScore{a, b, c}, nil, DefaultReportLimits())

	assert.Len(t, report.ByCategory["diabetes"], 1)
	assert.Len(t, report.ByCategory["cardiology"], 1)
	assert.Len(t, report.ByCategory[uncategorized], 1)
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(nil, nil, DefaultReportLimits())

	assert.Zero(t, report.TotalGaps)
	assert.NotNil(t, report.Top50Gaps)
	assert.NotNil(t, report.QuickWins)
	assert.NotNil(t, report.StrategicBets)
	assert.NotNil(t, report.CorrectionOpportunities)
}
