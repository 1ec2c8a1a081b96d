package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelCatalog_UnmarshalJSON(t *testing.T) {
	raw := `{
		"belief_seeders": [
			{"name": "Desi Health Guru", "narrative_types": ["sugar_cure_scam"], "influence_rating": 8, "strategic_action": "debunk_directly"}
		],
		"inspiration": [
			{"name": "MedCram", "type": "inspiration"}
		],
		"narrative_types": {"sugar_cure_scam": "permanent diabetes cure claims"},
		"debunk_priority": {"high": ["Desi Health Guru"]}
	}`

	var catalog ChannelCatalog
	require.NoError(t, json.Unmarshal([]byte(raw), &catalog))

	assert.Len(t, catalog.Groups["belief_seeders"], 1)
	assert.Len(t, catalog.Groups["inspiration"], 1)
	assert.Equal(t, "permanent diabetes cure claims", catalog.NarrativeTypes["sugar_cure_scam"])
	assert.Equal(t, []string{"Desi Health Guru"}, catalog.DebunkPriority.High)
}

func TestChannelCatalog_UnmarshalJSON_MalformedGroupDropped(t *testing.T) {
	raw := `{
		"belief_seeders": "not an array",
		"inspiration": [{"name": "MedCram"}]
	}`

	var catalog ChannelCatalog
	require.NoError(t, json.Unmarshal([]byte(raw), &catalog))

	assert.NotContains(t, catalog.Groups, "belief_seeders")
	assert.Len(t, catalog.Groups["inspiration"], 1)
}

func TestChannelCatalog_BeliefSeeders(t *testing.T) {
	catalog := &ChannelCatalog{
		Groups: map[string][]ChannelProfile{
			"belief_seeders": {
				{Name: "Desi Health Guru"},
			},
			"other": {
				{Name: "Nuskha TV", StrategicAction: StrategicActionDebunkDirectly},
				{Name: "Harmless Vlogs"},
			},
		},
	}

	seeders := catalog.BeliefSeeders()
	require.Len(t, seeders, 2)
	// Deterministic group order: "belief_seeders" before "other".
	assert.Equal(t, "Desi Health Guru", seeders[0].Name)
	assert.Equal(t, "Nuskha TV", seeders[1].Name)
}

func TestChannelCatalog_BeliefSeeders_NilCatalog(t *testing.T) {
	var catalog *ChannelCatalog
	assert.Nil(t, catalog.BeliefSeeders())
}

func TestChannelProfile_IsBeliefSeeder(t *testing.T) {
	assert.True(t, ChannelProfile{Name: "a", Type: ChannelBeliefSeeder}.IsBeliefSeeder())
	assert.True(t, ChannelProfile{Name: "b", StrategicAction: StrategicActionDebunkDirectly}.IsBeliefSeeder())
	assert.False(t, ChannelProfile{Name: "c", Type: ChannelInspiration}.IsBeliefSeeder())
}

func TestChannelCatalog_IsHighPriority(t *testing.T) {
	catalog := &ChannelCatalog{
		DebunkPriority: DebunkPriority{High: []string{"Desi Health Guru"}},
	}

	assert.True(t, catalog.IsHighPriority("desi health guru"))
	assert.False(t, catalog.IsHighPriority("MedCram"))
}
