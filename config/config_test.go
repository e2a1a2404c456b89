package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

func TestDefaultEngineSettingsIsValid(t *testing.T) {
	assert.NoError(t, DefaultEngineSettings().Validate())
}

func TestEngineSettingsApplyOnlyOverridesPositiveFields(t *testing.T) {
	s := DefaultEngineSettings()
	s.Apply(EngineSettings{MaxTotal: 900})

	assert.Equal(t, 900, s.MaxTotal)
	assert.Equal(t, DefaultShrineDiffCap, s.ShrineDiffCap)
	assert.Equal(t, DefaultStatCap, s.StatCap)
}

func TestEngineSettingsValidateRejectsNonPositiveFields(t *testing.T) {
	s := DefaultEngineSettings()
	s.MaxTotal = 0
	assert.Error(t, s.Validate())
}

func TestEngineSettingsValidateRejectsDiffCapAboveStatCap(t *testing.T) {
	s := DefaultEngineSettings()
	s.ShrineDiffCap = s.StatCap + 1
	assert.Error(t, s.Validate())
}

func TestEngineSettingsShrineCapsCarriesOverriddenValues(t *testing.T) {
	s := EngineSettings{MaxTotal: 900, ShrineDiffCap: 10, StatCap: 50}

	caps := s.ShrineCaps()

	assert.Equal(t, 10.0, caps.DiffCap)
	assert.Equal(t, 50, caps.StatCap)
}

func TestEngineSettingsRemainingAppliesMaxTotalOverride(t *testing.T) {
	s := EngineSettings{MaxTotal: 50, ShrineDiffCap: 10, StatCap: 50}
	sm := statmap.New()
	sm.Set(stat.Strength, 20)

	assert.Equal(t, 30, s.Remaining(sm))
}
