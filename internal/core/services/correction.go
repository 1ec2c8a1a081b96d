package services

import (
	"sort"
	"strings"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/logger"
)

// CorrectionConfig tunes the correction-opportunity detector.
type CorrectionConfig struct {
	// MinViews is the reach floor: belief-seeder videos below it are
	// never worth a correction.
	MinViews int

	// DirectResponseViews is the reach above which a direct response
	// format is suggested.
	DirectResponseViews int

	// MaxSeeds caps correction seeds per opportunity.
	MaxSeeds int

	// HighInfluenceRating marks profiles whose audience justifies a
	// myth-vs-fact short.
	HighInfluenceRating int
}

// DefaultCorrectionConfig returns the production thresholds.
func DefaultCorrectionConfig() CorrectionConfig {
	return CorrectionConfig{
		MinViews:            50000,
		DirectResponseViews: 500000,
		MaxSeeds:            3,
		HighInfluenceRating: 8,
	}
}

// seedWordMinLen is the cutoff for topic words considered when
// linking a seed topic to a video title.
const seedWordMinLen = 4

// priorityViewsDivisor converts views into correction priority.
const priorityViewsDivisor = 10000.0

// CorrectionDetector cross-references high-reach videos against known
// belief-seeder channel profiles and the topic catalog to surface
// misinformation-correction targets. It operates on whole collections,
// independently of per-topic gap scoring.
type CorrectionDetector struct {
	cfg CorrectionConfig
}

// NewCorrectionDetector creates a detector with the given thresholds.
func NewCorrectionDetector(cfg CorrectionConfig) *CorrectionDetector {
	if cfg.MinViews <= 0 {
		cfg = DefaultCorrectionConfig()
	}
	return &CorrectionDetector{cfg: cfg}
}

// Detect returns correction opportunities sorted by priority,
// descending. A video yields an opportunity only when its channel
// fuzzily matches a belief-seeder profile, its reach passes the
// floor, and at least one catalog topic can carry the correction.
func (d *CorrectionDetector) Detect(
	videos []domain.Video,
	channels *domain.ChannelCatalog,
	topics []domain.Topic,
) []domain.CorrectionOpportunity {
	seeders := channels.BeliefSeeders()
	if len(seeders) == 0 {
		logger.Debug("Correction detection: no belief-seeder profiles in catalog")
		return nil
	}

	var out []domain.CorrectionOpportunity
	for _, v := range videos {
		if v.Views < d.cfg.MinViews {
			continue
		}

		profile, ok := matchSeeder(v.ChannelName, seeders)
		if !ok {
			continue
		}
		if len(profile.NarrativeTypes) == 0 {
			logger.Debug("Correction detection: %q matched seeder %q but profile declares no narratives",
				v.ChannelName, profile.Name)
			continue
		}

		seeds := d.correctionSeeds(v, profile.NarrativeTypes, topics)
		if len(seeds) == 0 {
			continue
		}

		out = append(out, domain.CorrectionOpportunity{
			SourceVideo:        v,
			NarrativesPromoted: profile.NarrativeTypes,
			CorrectionSeeds:    seeds,
			PriorityScore:      round2(float64(v.Views) / priorityViewsDivisor * float64(len(profile.NarrativeTypes))),
			SuggestedFormats:   d.suggestFormats(v, profile, channels),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}

// matchSeeder finds the first belief-seeder profile whose name
// fuzzily matches the channel name: bidirectional substring
// containment, case-insensitive.
func matchSeeder(channelName string, seeders []domain.ChannelProfile) (domain.ChannelProfile, bool) {
	name := strings.ToLower(strings.TrimSpace(channelName))
	if name == "" {
		return domain.ChannelProfile{}, false
	}
	for _, p := range seeders {
		seeder := strings.ToLower(p.Name)
		if seeder == "" {
			continue
		}
		if strings.Contains(name, seeder) || strings.Contains(seeder, name) {
			return p, true
		}
	}
	return domain.ChannelProfile{}, false
}

// correctionSeeds collects catalog topics that can carry the
// correction: the topic's category must be eligible for one of the
// promoted narratives, and a significant topic word must appear in
// the video title. Topics are scanned in catalog order.
func (d *CorrectionDetector) correctionSeeds(
	v domain.Video, narratives []string, topics []domain.Topic,
) []domain.CorrectionSeed {
	// First narrative to claim a category wins the attribution.
	eligible := make(map[string]string)
	for _, n := range narratives {
		for _, cat := range narrativeCategories[n] {
			if _, ok := eligible[cat]; !ok {
				eligible[cat] = n
			}
		}
	}

	title := strings.ToLower(v.Title)

	var seeds []domain.CorrectionSeed
	for _, t := range topics {
		if len(seeds) >= d.cfg.MaxSeeds {
			break
		}
		narrative, ok := eligible[t.Category]
		if !ok {
			continue
		}
		if !topicWordInTitle(t.Text, title) {
			continue
		}
		seeds = append(seeds, domain.CorrectionSeed{
			SeedID:         t.ID,
			Idea:           t.Text,
			Category:       t.Category,
			NarrativeMatch: narrative,
		})
	}
	return seeds
}

// topicWordInTitle reports whether any topic word longer than four
// characters appears in the lowercased title.
func topicWordInTitle(topicText, loweredTitle string) bool {
	for _, word := range strings.Fields(strings.ToLower(topicText)) {
		if len(word) > seedWordMinLen && strings.Contains(loweredTitle, word) {
			return true
		}
	}
	return false
}

// suggestFormats attaches 1-4 content formats based on reach and
// narrative type. Every opportunity gets the hindi-adaptation
// fallback.
func (d *CorrectionDetector) suggestFormats(
	v domain.Video, profile domain.ChannelProfile, channels *domain.ChannelCatalog,
) []domain.ContentFormat {
	var formats []domain.ContentFormat

	if v.Views > d.cfg.DirectResponseViews {
		formats = append(formats, domain.ContentFormat{
			Type:        domain.FormatDirectResponse,
			Description: "Direct response naming and correcting the claims while the video is still circulating",
		})
	}

	for _, n := range profile.NarrativeTypes {
		if evidenceBackedNarratives[n] {
			formats = append(formats, domain.ContentFormat{
				Type:        domain.FormatEvidenceSynthesis,
				Description: "Evidence synthesis walking through the trial data that rebuts the narrative",
			})
			break
		}
	}

	if profile.InfluenceRating >= d.cfg.HighInfluenceRating || channels.IsHighPriority(profile.Name) {
		formats = append(formats, domain.ContentFormat{
			Type:        domain.FormatMythVsFact,
			Description: "Short myth-vs-fact rebuttal aimed at the seeder channel's audience",
		})
	}

	formats = append(formats, domain.ContentFormat{
		Type:        domain.FormatHindiAdaptation,
		Description: "Hindi adaptation of the correct guidance for the local audience",
	})
	return formats
}
