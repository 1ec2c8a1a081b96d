package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// StrategicActionDebunkDirectly marks a profile whose videos should be
// answered with direct debunks.
const StrategicActionDebunkDirectly = "debunk_directly"

// ChannelProfile describes a tracked channel from the research catalog.
type ChannelProfile struct {
	Name string `json:"name"`

	// Type is the declared channel type, if the catalog states one.
	Type ChannelType `json:"type,omitempty"`

	// NarrativeTypes lists the narratives this channel promotes.
	NarrativeTypes []string `json:"narrative_types,omitempty"`

	// InfluenceRating is a 1-10 editorial estimate of reach/authority.
	InfluenceRating int `json:"influence_rating,omitempty"`

	// StrategicAction is the recommended response to this channel
	// (e.g., "debunk_directly", "monitor", "ignore").
	StrategicAction string `json:"strategic_action,omitempty"`

	// SubscriberEstimate is a display figure (e.g., "1.2M").
	SubscriberEstimate string `json:"subscriber_estimate,omitempty"`
}

// Valid reports whether the profile record is usable.
func (p ChannelProfile) Valid() bool {
	return p.Name != ""
}

// IsBeliefSeeder reports whether the profile's declared type or
// strategic action marks it as a direct-debunk target.
func (p ChannelProfile) IsBeliefSeeder() bool {
	return p.Type == ChannelBeliefSeeder || p.StrategicAction == StrategicActionDebunkDirectly
}

// DebunkPriority holds the catalog's priority tiers of channel names.
type DebunkPriority struct {
	High []string `json:"high,omitempty"`
}

// ChannelCatalog is the scraped channel-profile collection. Profiles
// are keyed by research group (e.g., "belief_seeders", "inspiration"),
// alongside a narrative-type lookup and debunk priority tiers.
type ChannelCatalog struct {
	Groups         map[string][]ChannelProfile
	NarrativeTypes map[string]string
	DebunkPriority DebunkPriority
}

// catalog JSON keys reserved for the non-group sections.
const (
	keyNarrativeTypes = "narrative_types"
	keyDebunkPriority = "debunk_priority"
)

// BeliefSeeders returns every profile that should be treated as a
// belief seeder: members of the "belief_seeders" group plus any
// profile elsewhere whose type or strategic action qualifies it.
// Profiles are returned in deterministic group-name order.
func (c *ChannelCatalog) BeliefSeeders() []ChannelProfile {
	if c == nil {
		return nil
	}

	var names []string
	for group := range c.Groups {
		names = append(names, group)
	}
	// Map iteration order is random; sort for run-to-run stability.
	sort.Strings(names)

	var seeders []ChannelProfile
	for _, group := range names {
		for _, p := range c.Groups[group] {
			if group == "belief_seeders" || p.IsBeliefSeeder() {
				seeders = append(seeders, p)
			}
		}
	}
	return seeders
}

// IsHighPriority reports whether the channel name is on the
// debunk_priority.high list (case-insensitive).
func (c *ChannelCatalog) IsHighPriority(name string) bool {
	if c == nil {
		return false
	}
	for _, n := range c.DebunkPriority.High {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// UnmarshalJSON parses the scraped channels document: every top-level
// key holds a profile group except the reserved narrative_types and
// debunk_priority sections. Malformed groups are dropped rather than
// failing the whole catalog.
func (c *ChannelCatalog) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Groups = make(map[string][]ChannelProfile)
	for key, msg := range raw {
		switch key {
		case keyNarrativeTypes:
			if err := json.Unmarshal(msg, &c.NarrativeTypes); err != nil {
				c.NarrativeTypes = nil
			}
		case keyDebunkPriority:
			if err := json.Unmarshal(msg, &c.DebunkPriority); err != nil {
				c.DebunkPriority = DebunkPriority{}
			}
		default:
			var profiles []ChannelProfile
			if err := json.Unmarshal(msg, &profiles); err != nil {
				continue
			}
			c.Groups[key] = profiles
		}
	}
	return nil
}

// MarshalJSON writes the catalog back in its scraped document shape.
func (c ChannelCatalog) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Groups)+2)
	for group, profiles := range c.Groups {
		out[group] = profiles
	}
	if len(c.NarrativeTypes) > 0 {
		out[keyNarrativeTypes] = c.NarrativeTypes
	}
	if len(c.DebunkPriority.High) > 0 {
		out[keyDebunkPriority] = c.DebunkPriority
	}
	return json.Marshal(out)
}
