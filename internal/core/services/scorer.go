package services

import (
	"math"
	"strings"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// Scoring constants. These are part of the score contract: changing
// any of them changes every reported gap score.
const (
	// questionBaseWeight is the demand added per matched question.
	questionBaseWeight = 1.0
	// questionLikeDivisor converts likes into extra demand weight.
	questionLikeDivisor = 10.0
	// inspirationViewsDivisor converts inspiration views into demand.
	inspirationViewsDivisor = 100000.0

	// languageGapMultiplier boosts topics proven in English with no
	// hindi coverage.
	languageGapMultiplier = 1.5
	// demandProofMultiplier boosts topics with repeated questions.
	demandProofMultiplier = 1.3
	// demandProofThreshold is the question count enabling the boost.
	demandProofThreshold = 3

	// maxSamples caps audit samples per topic.
	maxSamples = 3
	// maxSampleLen truncates sampled texts for the report.
	maxSampleLen = 100

	supplyLanguage = "hindi"
)

// Scorer computes one GapScore per topic from the question and video
// collections. Accumulation is purely additive, so iteration order
// never affects the final score, and per-topic scoring shares no
// state across topics.
type Scorer struct {
	matcher *Matcher
}

// NewScorer creates a scorer using the given matcher.
func NewScorer(matcher *Matcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// Score computes the demand, supply and gap score for one topic.
// correctionScore is the per-topic correction relevance computed by
// the correction detector for the same snapshot (0 when unknown).
func (s *Scorer) Score(
	topic domain.Topic,
	questions []domain.Question,
	videos []domain.Video,
	correctionScore int,
) domain.GapScore {
	details := domain.ScoreDetails{CorrectionScore: correctionScore}

	var demand float64
	for _, q := range questions {
		if !s.matcher.Matches(q.Text, topic) {
			continue
		}
		demand += questionBaseWeight + float64(q.Likes)/questionLikeDivisor
		details.QuestionsFound++
		if len(details.SampleQuestions) < maxSamples {
			details.SampleQuestions = append(details.SampleQuestions, truncate(q.Text, maxSampleLen))
		}
	}

	var supply, inspirationViews int
	for _, v := range videos {
		if !s.matcher.Matches(v.Title, topic) {
			continue
		}

		if v.ChannelType == domain.ChannelInspiration {
			demand += float64(v.Views) / inspirationViewsDivisor
			details.EnglishVideos++
			inspirationViews += v.Views
		}

		if strings.EqualFold(v.ChannelLanguage, supplyLanguage) || v.ChannelType == domain.ChannelCompetition {
			supply++
			details.HindiVideos++
			if len(details.SampleVideos) < maxSamples {
				details.SampleVideos = append(details.SampleVideos, truncate(v.Title, maxSampleLen))
			}
		}
	}

	if details.EnglishVideos > 0 {
		details.InspirationAvgViews = round2(float64(inspirationViews) / float64(details.EnglishVideos))
	}

	// supply+1 makes division by zero structurally impossible.
	gap := demand / float64(supply+1)
	if details.EnglishVideos > 0 && details.HindiVideos == 0 {
		gap *= languageGapMultiplier
	}
	if details.QuestionsFound >= demandProofThreshold {
		gap *= demandProofMultiplier
	}

	return domain.GapScore{
		TopicID:         topic.ID,
		TopicText:       topic.Text,
		Category:        topic.Category,
		Pillar:          topic.Pillar,
		DemandScore:     round2(demand),
		SupplyScore:     supply,
		GapScore:        round2(gap),
		OpportunityType: ClassifyOpportunity(details),
		Details:         details,
	}
}

// round2 rounds to 2 decimal places for the report.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// truncate shortens s to at most n runes for audit samples. Cutting
// on a rune boundary keeps Devanagari question text valid UTF-8.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
