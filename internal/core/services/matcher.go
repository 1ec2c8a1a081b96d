package services

import (
	"strings"

	"github.com/sehat-labs/gapscan/internal/core/domain"
)

// Matcher implements the string heuristics the engine uses to relate
// free text to the topic catalog and the narrative dictionary. The
// heuristics are deliberately permissive and occasionally over- or
// under-match; scoring depends only on this interface, so a stricter
// matcher can be substituted without touching the scoring logic.
type Matcher struct{}

// NewMatcher creates a matcher with the default heuristics.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// minWordLen is the cutoff below which topic words are ignored by the
// word-overlap rule (articles, "in", "for", numbers like "2").
const minWordLen = 3

// Matches reports whether text mentions the topic. Two rules, either
// suffices: the lowercased topic text is a substring of the text
// (exact phrasing), or every topic word longer than three characters
// appears somewhere in the text (reordered or paraphrased mentions,
// no stemming).
func (m *Matcher) Matches(text string, topic domain.Topic) bool {
	topicText := strings.ToLower(strings.TrimSpace(topic.Text))
	if topicText == "" {
		return false
	}
	target := strings.ToLower(text)

	if strings.Contains(target, topicText) {
		return true
	}

	significant := 0
	for _, word := range strings.Fields(topicText) {
		if len(word) <= minWordLen {
			continue
		}
		if !strings.Contains(target, word) {
			return false
		}
		significant++
	}
	// A topic made only of short words never word-matches; without
	// this guard it would match every text vacuously.
	return significant > 0
}

// DetectNarratives returns the names of known false narratives whose
// trigger phrases appear in the text, in stable dictionary order.
// Only presence counts: scanning stops at the first trigger hit per
// narrative.
func (m *Matcher) DetectNarratives(text string) []string {
	target := strings.ToLower(text)

	var found []string
	for _, name := range narrativeNames {
		for _, trigger := range narrativeTriggers[name] {
			if strings.Contains(target, trigger) {
				found = append(found, name)
				break
			}
		}
	}
	return found
}

// ClaimMatch is a specific debunkable assertion detected in text.
type ClaimMatch struct {
	// Narrative is the narrative the claim belongs to.
	Narrative string

	// ClaimType names the assertion class (e.g., "permanent_cure").
	ClaimType string

	// Text is the matched fragment.
	Text string
}

// DetectClaims runs the claim-pattern layer over the text. For each
// claim type the first matching pattern wins.
func (m *Matcher) DetectClaims(text string) []ClaimMatch {
	var matches []ClaimMatch
	for _, set := range claimPatterns {
		for _, pattern := range set.patterns {
			if loc := pattern.FindString(text); loc != "" {
				matches = append(matches, ClaimMatch{
					Narrative: set.narrative,
					ClaimType: set.claimType,
					Text:      loc,
				})
				break
			}
		}
	}
	return matches
}
