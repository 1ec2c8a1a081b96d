package services

import "github.com/sehat-labs/gapscan/internal/core/domain"

// Classification thresholds.
const (
	// correctionRelevanceThreshold: seeds referencing the topic
	// before it counts as an active correction target.
	correctionRelevanceThreshold = 3
	// provenTopicMinAvgViews: inspiration average proving a topic.
	provenTopicMinAvgViews = 100000.0
)

// ClassifyOpportunity assigns exactly one opportunity type from the
// scoring details. The rules are an ordered chain and the first match
// wins; the order is a deliberate priority, not a scoring
// competition: active misinformation outranks a pure language gap,
// which outranks raw demand, which outranks proven-but-untranslated,
// which outranks already-covered-but-improvable.
func ClassifyOpportunity(d domain.ScoreDetails) domain.OpportunityType {
	switch {
	case d.CorrectionScore >= correctionRelevanceThreshold:
		return domain.OpportunityCorrection
	case d.EnglishVideos > 0 && d.HindiVideos == 0:
		return domain.OpportunityLanguageGap
	case d.QuestionsFound >= demandProofThreshold && d.HindiVideos == 0:
		return domain.OpportunityDemandGap
	case d.InspirationAvgViews > provenTopicMinAvgViews && d.HindiVideos == 0:
		return domain.OpportunityProvenTopic
	case d.HindiVideos > 0 && d.QuestionsFound >= demandProofThreshold:
		return domain.OpportunityImprovement
	default:
		return domain.OpportunityGeneral
	}
}
