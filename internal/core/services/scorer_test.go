package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

func newTestScorer() *Scorer {
	return NewScorer(NewMatcher())
}

// The worked language-gap scenario: one liked question (1 + 40/10 = 5)
// plus one 300k-view inspiration video (3) gives demand 8, supply 0,
// base gap 8, and the 1.5 language bonus lands on 12. One question is
// below the demand-proof threshold, so no second bonus.
func TestScorer_Score_LanguageGapScenario(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "SGLT2 inhibitors heart failure", Category: "cardiology"}

	questions := []domain.Question{
		{Text: "what do sglt2 inhibitors do for heart failure", Likes: 40},
	}
	videos := []domain.Video{
		{Title: "SGLT2 Inhibitors in Heart Failure Explained", ChannelType: domain.ChannelInspiration, Views: 300000},
	}

	gs := scorer.Score(topic, questions, videos, 0)

	assert.Equal(t, 1, gs.Details.QuestionsFound)
	assert.Equal(t, 1, gs.Details.EnglishVideos)
	assert.Equal(t, 0, gs.Details.HindiVideos)
	assert.InDelta(t, 300000.0, gs.Details.InspirationAvgViews, 0.001)
	assert.InDelta(t, 8.0, gs.DemandScore, 0.001)
	assert.Equal(t, 0, gs.SupplyScore)
	assert.InDelta(t, 12.0, gs.GapScore, 0.001)
	assert.Equal(t, domain.OpportunityLanguageGap, gs.OpportunityType)
}

func TestScorer_Score_NoMatches(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "SGLT2 inhibitors heart failure", Category: "cardiology"}

	gs := scorer.Score(topic, nil, nil, 0)

	assert.Zero(t, gs.DemandScore)
	assert.Zero(t, gs.SupplyScore)
	assert.Zero(t, gs.GapScore)
	assert.Equal(t, domain.OpportunityGeneral, gs.OpportunityType)
}

func TestScorer_Score_SupplyAccumulation(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	videos := []domain.Video{
		{Title: "Metformin side effects in hindi", ChannelLanguage: "hindi", ChannelType: domain.ChannelOther, Views: 1000},
		{Title: "Metformin side effects review", ChannelType: domain.ChannelCompetition, Views: 2000},
		{Title: "Unrelated video", ChannelLanguage: "hindi", Views: 9000},
	}
	questions := []domain.Question{
		{Text: "metformin side effects kya hai", Likes: 0},
	}

	gs := scorer.Score(topic, questions, videos, 0)

	assert.Equal(t, 2, gs.SupplyScore)
	assert.Equal(t, 2, gs.Details.HindiVideos)
	assert.Len(t, gs.Details.SampleVideos, 2)
	// demand 1.0, supply 2 -> 1/3 rounded.
	assert.InDelta(t, 0.33, gs.GapScore, 0.001)
	assert.Equal(t, domain.OpportunityGeneral, gs.OpportunityType)
}

func TestScorer_Score_BothBonuses(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	questions := []domain.Question{
		{Text: "metformin side effects?", Likes: 0},
		{Text: "are metformin side effects permanent", Likes: 0},
		{Text: "metformin side effects at night", Likes: 0},
	}
	videos := []domain.Video{
		{Title: "Metformin side effects", ChannelType: domain.ChannelInspiration, Views: 100000},
	}

	gs := scorer.Score(topic, questions, videos, 0)

	// demand = 3 + 1 = 4, supply 0, base 4, x1.5 x1.3 = 7.8.
	assert.InDelta(t, 4.0, gs.DemandScore, 0.001)
	assert.InDelta(t, 7.8, gs.GapScore, 0.001)
}

func TestScorer_Score_SampleLimitsAndTruncation(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	long := "metformin side effects " + strings.Repeat("x", 200)
	questions := []domain.Question{
		{Text: long, Likes: 0},
		{Text: "metformin side effects 2", Likes: 0},
		{Text: "metformin side effects 3", Likes: 0},
		{Text: "metformin side effects 4", Likes: 0},
	}

	gs := scorer.Score(topic, questions, nil, 0)

	assert.Equal(t, 4, gs.Details.QuestionsFound)
	require.Len(t, gs.Details.SampleQuestions, 3)
	assert.Len(t, gs.Details.SampleQuestions[0], 100)
}

// Hindi questions are longer in bytes than in characters; samples
// must be cut per rune so the report never carries broken UTF-8.
func TestScorer_Score_SampleKeepsDevanagariIntact(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	hindi := "metformin side effects " + strings.Repeat("क", 120)
	questions := []domain.Question{{Text: hindi, Likes: 0}}

	gs := scorer.Score(topic, questions, nil, 0)

	require.Len(t, gs.Details.SampleQuestions, 1)
	sample := gs.Details.SampleQuestions[0]
	assert.True(t, utf8.ValidString(sample))
	assert.Equal(t, 100, utf8.RuneCountInString(sample))
	assert.True(t, strings.HasPrefix(hindi, sample))
}

func TestScorer_Score_InspirationAvgViews(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	videos := []domain.Video{
		{Title: "metformin side effects A", ChannelType: domain.ChannelInspiration, Views: 100000},
		{Title: "metformin side effects B", ChannelType: domain.ChannelInspiration, Views: 200000},
	}

	gs := scorer.Score(topic, nil, videos, 0)

	assert.Equal(t, 2, gs.Details.EnglishVideos)
	assert.InDelta(t, 150000.0, gs.Details.InspirationAvgViews, 0.001)
	// demand = 1 + 2 = 3, x1.5 language bonus = 4.5.
	assert.InDelta(t, 4.5, gs.GapScore, 0.001)
}

func TestScorer_Score_OrderIndependent(t *testing.T) {
	scorer := newTestScorer()
	topic := domain.Topic{ID: "t1", Text: "metformin side effects", Category: "diabetes"}

	videos := []domain.Video{
		{Title: "metformin side effects A", ChannelType: domain.ChannelInspiration, Views: 120000},
		{Title: "metformin side effects hindi", ChannelLanguage: "hindi", Views: 500},
	}
	questions := []domain.Question{
		{Text: "metformin side effects?", Likes: 7},
		{Text: "why metformin side effects happen", Likes: 3},
	}

	forward := scorer.Score(topic, questions, videos, 0)

	reversedVideos := []domain.Video{videos[1], videos[0]}
	reversedQuestions := []domain.Question{questions[1], questions[0]}
	backward := scorer.Score(topic, reversedQuestions, reversedVideos, 0)

	assert.Equal(t, forward.DemandScore, backward.DemandScore)
	assert.Equal(t, forward.SupplyScore, backward.SupplyScore)
	assert.Equal(t, forward.GapScore, backward.GapScore)
	assert.Equal(t, forward.OpportunityType, backward.OpportunityType)
}
