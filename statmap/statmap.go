// Package statmap holds a character's allocated stat points and the derived
// scalars (cost, remaining, level) computed from that allocation.
package statmap

import (
	"sort"

	"github.com/pocamind/deep-go/stat"
)

// DefaultMaxTotal is the level-cap point budget used by Remaining when no
// engine setting overrides it. Documented in DESIGN.md as a guessed value:
// the upstream constant it mirrors is never defined in the reference
// material this package was built from.
const DefaultMaxTotal = 700

// StatMap maps a stat to its allocated point value. The zero value is an
// empty map ready to use.
type StatMap struct {
	values map[stat.Stat]int
}

// New returns an empty StatMap.
func New() StatMap {
	return StatMap{values: make(map[stat.Stat]int)}
}

// FromMap builds a StatMap from a plain map, copying it so the caller's map
// can be mutated afterwards without affecting the StatMap.
func FromMap(values map[stat.Stat]int) StatMap {
	sm := New()
	for s, v := range values {
		sm.values[s] = v
	}
	return sm
}

// Get returns the value stored for s, or 0 if unset. Total is never stored
// and always reads as 0 through Get; callers that mean "point cost" should
// call Cost instead, which is exactly what Atom.SatisfiedBy does.
func (sm StatMap) Get(s stat.Stat) int {
	if sm.values == nil {
		return 0
	}
	return sm.values[s]
}

// Set stores v for stat s. Setting Total has no effect, since Total is
// never stored. Set mutates the receiver's backing map in place
// (StatMap is a thin reference type, like a Go map), so callers that need
// an independent copy should start from Clone.
func (sm *StatMap) Set(s stat.Stat, v int) {
	if s == stat.Total {
		return
	}
	if sm.values == nil {
		sm.values = make(map[stat.Stat]int)
	}
	sm.values[s] = v
}

// Clone returns an independent copy of the map.
func (sm StatMap) Clone() StatMap {
	return FromMap(sm.values)
}

// Stats returns the stats with a recorded value, in canonical enum order.
// Total is never included since it is never stored.
func (sm StatMap) Stats() []stat.Stat {
	stats := make([]stat.Stat, 0, len(sm.values))
	for s := range sm.values {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i] < stats[j] })
	return stats
}

// Cost computes the total point cost of the allocation: the sum of every
// stored value, minus a discount of (attunements allocated above zero) - 1,
// floored at zero. The first attunement invested in is free.
func (sm StatMap) Cost() int {
	sum := 0
	attunementsInvested := 0
	for s, v := range sm.values {
		sum += v
		if s.IsAttunement() && v > 0 {
			attunementsInvested++
		}
	}
	discount := attunementsInvested - 1
	if discount < 0 {
		discount = 0
	}
	return sum - discount
}

// Remaining returns DefaultMaxTotal minus Cost.
func (sm StatMap) Remaining() int {
	return sm.RemainingWithCap(DefaultMaxTotal)
}

// RemainingWithCap returns maxTotal minus Cost, letting callers (e.g. the
// config package's engine settings) supply an overridden point budget.
func (sm StatMap) RemainingWithCap(maxTotal int) int {
	return maxTotal - sm.Cost()
}

// Level returns max(0, (cost-15)/15) using integer division, matching the
// reference implementation's level formula.
func (sm StatMap) Level() int {
	level := (sm.Cost() - 15) / 15
	if level < 0 {
		return 0
	}
	return level
}
