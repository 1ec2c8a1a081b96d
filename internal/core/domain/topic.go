package domain

// Topic is a seed content idea from the catalog. The catalog is
// loaded once per run and never mutated by the engine.
type Topic struct {
	// ID uniquely identifies the seed (e.g., "seed-042").
	ID string `json:"id"`

	// Text is the canonical topic phrasing used for matching.
	Text string `json:"text"`

	// Category groups topics for reporting (e.g., "diabetes").
	Category string `json:"category"`

	// Pillar is the content pillar this topic belongs to.
	Pillar string `json:"pillar,omitempty"`

	// Archetypes lists the content archetypes the topic suits.
	Archetypes []string `json:"archetypes,omitempty"`
}

// Valid reports whether the record carries the fields scoring needs.
// Invalid records are skipped by the signal store adapters.
func (t Topic) Valid() bool {
	return t.ID != "" && t.Text != ""
}

// Modifier is a sibling catalog entry consumed by the downstream
// combination generator. The gap engine passes modifiers through
// without scoring them.
type Modifier struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`

	// CompatiblePillars restricts which topic pillars the modifier
	// can be combined with.
	CompatiblePillars []string `json:"compatible_pillars,omitempty"`
}

// Valid reports whether the modifier record is usable downstream.
func (m Modifier) Valid() bool {
	return m.ID != "" && m.Text != ""
}
