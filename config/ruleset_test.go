package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocamind/deep-go/stat"
)

func TestPresetSetValidateRejectsUnknownStat(t *testing.T) {
	ps := PresetSet{Presets: []RacialPreset{
		{Name: "bogus", Baseline: map[string]int{"XYZ": 10}},
	}}
	assert.Error(t, ps.Validate())
}

func TestPresetSetValidateAcceptsKnownStats(t *testing.T) {
	ps := PresetSet{Presets: []RacialPreset{
		{Name: "stoneborn", Baseline: map[string]int{"STR": 20, "FTD": 10}},
	}}
	assert.NoError(t, ps.Validate())
}

func TestRacialPresetStatMapConverts(t *testing.T) {
	p := RacialPreset{Name: "stoneborn", Baseline: map[string]int{"STR": 20}}
	sm, err := p.StatMap()
	require.NoError(t, err)
	assert.Equal(t, 20, sm.Get(stat.Strength))
}

func TestPresetSetLookupFindsByExactName(t *testing.T) {
	ps := PresetSet{Presets: []RacialPreset{
		{Name: "stoneborn", Baseline: map[string]int{"STR": 20}},
	}}

	sm, ok := ps.Lookup("stoneborn")
	require.True(t, ok)
	assert.Equal(t, 20, sm.Get(stat.Strength))

	_, ok = ps.Lookup("missing")
	assert.False(t, ok)
}

func TestRacialPresetWithOverrideMergesBaseline(t *testing.T) {
	p := RacialPreset{Name: "stoneborn", Baseline: map[string]int{"STR": 20, "FTD": 10}}
	merged := p.WithOverride(map[string]int{"FTD": 15, "AGL": 5})

	assert.Equal(t, 20, merged.Baseline["STR"])
	assert.Equal(t, 15, merged.Baseline["FTD"])
	assert.Equal(t, 5, merged.Baseline["AGL"])
}
