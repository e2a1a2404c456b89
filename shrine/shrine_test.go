package shrine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

func buildMap(values map[stat.Stat]int) statmap.StatMap {
	sm := statmap.New()
	for s, v := range values {
		sm.Set(s, v)
	}
	return sm
}

func TestOrderSingleStatCapsDivergenceAndConservesCost(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{stat.Strength: 100, stat.Agility: 0, stat.Intelligence: 0})
	racial := statmap.New()

	out := Order(pre, racial, DefaultCaps())

	assert.GreaterOrEqual(t, out.Get(stat.Strength), 75)
	assert.LessOrEqual(t, out.Cost(), pre.Cost())
}

func TestOrderNoAffectedStatsReturnsPreUnchanged(t *testing.T) {
	pre := statmap.New()
	racial := statmap.New()

	out := Order(pre, racial, DefaultCaps())

	assert.Equal(t, 0, out.Cost())
}

func TestOrderRacialBaselineExcludesFullyCoveredStat(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{stat.Strength: 20, stat.Agility: 60})
	racial := buildMap(map[stat.Stat]int{stat.Strength: 20})

	out := Order(pre, racial, DefaultCaps())

	assert.Equal(t, 20, out.Get(stat.Strength))
}

func TestOrderSpreadsEvenlyAcrossMultipleAffectedStats(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{stat.Strength: 40, stat.Agility: 40, stat.Fortitude: 40})
	racial := statmap.New()

	out := Order(pre, racial, DefaultCaps())

	for _, s := range []stat.Stat{stat.Strength, stat.Agility, stat.Fortitude} {
		assert.InDelta(t, 40, out.Get(s), 1)
	}
	assert.LessOrEqual(t, out.Cost(), pre.Cost())
}

func TestOrderNeverExceedsStatCap(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{stat.Strength: 100, stat.Agility: 1})
	racial := statmap.New()

	out := Order(pre, racial, DefaultCaps())

	for _, s := range out.Stats() {
		assert.LessOrEqual(t, out.Get(s), StatCap)
	}
}

func TestOrderRespectsDiffCapForEveryNonAttunementStat(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{
		stat.Strength:    90,
		stat.Fortitude:   10,
		stat.Agility:     10,
		stat.Intelligence: 10,
	})
	racial := statmap.New()

	out := Order(pre, racial, DefaultCaps())

	for _, s := range pre.Stats() {
		if s.IsAttunement() {
			continue
		}
		assert.LessOrEqual(t, pre.Get(s)-out.Get(s), int(DiffCap))
	}
}

func TestOrderHonorsOverriddenCaps(t *testing.T) {
	pre := buildMap(map[stat.Stat]int{stat.Strength: 90, stat.Fortitude: 10})
	racial := statmap.New()
	caps := Caps{DiffCap: 5, StatCap: 40}

	out := Order(pre, racial, caps)

	for _, s := range pre.Stats() {
		assert.LessOrEqual(t, pre.Get(s)-out.Get(s), int(caps.DiffCap))
		assert.LessOrEqual(t, out.Get(s), caps.StatCap)
	}
}
