package services

import (
	"regexp"
	"sort"
)

// The narrative dictionary for the Hindi-audience health channel:
// known false narratives circulating on regional health channels,
// their trigger phrases, the claim patterns that make them concrete,
// and the topic categories whose seeds can carry a correction.
// All tables are immutable after init.

// narrativeTriggers maps narrative name to its trigger phrases.
// A narrative is detected in a text if any trigger is a substring;
// frequency within one text is not counted.
var narrativeTriggers = map[string][]string{
	"sugar_cure_scam": {
		"cure diabetes permanently",
		"reverse diabetes in 30 days",
		"diabetes ka permanent ilaj",
		"say goodbye to metformin",
		"no medicine needed for sugar",
	},
	"insulin_fear": {
		"insulin is dangerous",
		"insulin se kidney kharab",
		"once you start insulin",
		"insulin is the last stage",
		"avoid insulin at all costs",
	},
	"statin_denial": {
		"statins are poison",
		"cholesterol is a myth",
		"stop taking statins",
		"cholesterol medicine is a scam",
	},
	"miracle_remedy": {
		"miracle cure",
		"karela juice cures",
		"gharelu nuskha se ilaj",
		"methi dana cures",
		"jamun seed powder for sugar",
	},
	"bp_med_dependency": {
		"bp medicine makes you dependent",
		"bp ki dawa zindagi bhar",
		"stop bp medicine naturally",
	},
}

// narrativeNames fixes the narrative scan order so detection output
// is deterministic regardless of map iteration.
var narrativeNames = func() []string {
	names := make([]string, 0, len(narrativeTriggers))
	for name := range narrativeTriggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// claimPatternSet binds one claim type to its detection patterns.
// Patterns are tried in order; the first match wins for the type.
type claimPatternSet struct {
	narrative string
	claimType string
	patterns  []*regexp.Regexp
}

var claimPatterns = []claimPatternSet{
	{
		narrative: "sugar_cure_scam",
		claimType: "permanent_cure",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(cure|reverse)\s+(type\s*2\s+)?diabetes\s+(permanently|completely|forever)`),
			regexp.MustCompile(`(?i)diabetes\s+(cured|reversed)\s+in\s+\d+\s+(days?|weeks?)`),
		},
	},
	{
		narrative: "sugar_cure_scam",
		claimType: "quit_medication",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(quit|stop|leave|chhod)\w*\s+(metformin|insulin|all\s+medicines?|sugar\s+ki\s+dawa)`),
		},
	},
	{
		narrative: "insulin_fear",
		claimType: "organ_damage",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)insulin\s+(damages?|destroys?|fails?|kharab)\w*\s+(your\s+)?(kidneys?|liver|organs?)`),
		},
	},
	{
		narrative: "statin_denial",
		claimType: "poison_claim",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)statins?\s+(are|is)\s+(poison|toxic|a\s+scam)`),
			regexp.MustCompile(`(?i)cholesterol\s+(is|was)\s+a\s+(myth|hoax|lie)`),
		},
	},
	{
		narrative: "miracle_remedy",
		claimType: "food_cure",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(karela|methi|jamun|neem|giloy)[\w\s]*\s(cures?|reverses?|khatam)`),
		},
	},
	{
		narrative: "bp_med_dependency",
		claimType: "dependency_claim",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(bp|blood\s+pressure)\s+(medicine|dawa)[\w\s]*(dependen|addict|lifelong|zindagi)`),
		},
	},
}

// narrativeCategories maps each narrative to the topic categories
// whose seeds are eligible to carry a correction.
var narrativeCategories = map[string][]string{
	"sugar_cure_scam":   {"diabetes", "lifestyle", "nutrition"},
	"insulin_fear":      {"diabetes", "medication"},
	"statin_denial":     {"cardiology", "medication"},
	"miracle_remedy":    {"diabetes", "nutrition", "lifestyle"},
	"bp_med_dependency": {"hypertension", "medication"},
}

// evidenceBackedNarratives marks narratives with a strong published
// rebuttal, eligible for the evidence-synthesis format.
var evidenceBackedNarratives = map[string]bool{
	"insulin_fear":      true,
	"statin_denial":     true,
	"bp_med_dependency": true,
}
