package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortNameAlternates(t *testing.T) {
	testCases := []struct {
		short    string
		expected Stat
	}{
		{"AGL", Agility},
		{"AGI", Agility},
		{"agl", Agility},
		{"WLL", Willpower},
		{"WIL", Willpower},
		{"FLM", Flamecharm},
		{"FIR", Flamecharm},
		{"TTL", Total},
		{"TOT", Total},
	}

	for _, tc := range testCases {
		t.Run(tc.short, func(t *testing.T) {
			s, ok := FromShortName(tc.short)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestFromShortNameRejectsUnknown(t *testing.T) {
	_, ok := FromShortName("SBF")
	assert.False(t, ok)
}

func TestFromNameAcceptsWeaponAliases(t *testing.T) {
	s, ok := FromName("Heavy Wep.")
	assert.True(t, ok)
	assert.Equal(t, HeavyWeapon, s)

	s, ok = FromName("heavy")
	assert.True(t, ok)
	assert.Equal(t, HeavyWeapon, s)
}

func TestIsAttunement(t *testing.T) {
	attunements := []Stat{Frostdraw, Flamecharm, Thundercall, Galebreathe, Shadowcast, Ironsing, Bloodrend}
	for _, s := range attunements {
		assert.True(t, s.IsAttunement(), s.Name())
	}

	nonAttunements := []Stat{Strength, Fortitude, Agility, Intelligence, Willpower, Charisma, HeavyWeapon, MediumWeapon, LightWeapon, Total}
	for _, s := range nonAttunements {
		assert.False(t, s.IsAttunement(), s.Name())
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, s := range All {
		parsed, ok := FromName(s.Name())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)

		parsed, ok = FromShortName(s.ShortName())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
}

func TestFromAnyNamePrefersShortName(t *testing.T) {
	s, ok := FromAnyName("STR")
	assert.True(t, ok)
	assert.Equal(t, Strength, s)

	s, ok = FromAnyName("Strength")
	assert.True(t, ok)
	assert.Equal(t, Strength, s)
}
