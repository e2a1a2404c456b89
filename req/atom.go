// Package req models a boolean formula over stat sums: Atom, Clause, and
// Requirement, plus the satisfaction predicate and equality rules that let a
// parsed requirement compare equal to any other accepted textual variant of
// the same formula.
package req

import (
	"fmt"
	"strings"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

// Reducability marks whether an atom's threshold must be met exactly
// (Strict) or may be lowered by mechanisms not modeled here (Reducible).
type Reducability int

const (
	Strict Reducability = iota
	Reducible
)

// String renders the single-character form used by the emitter ("s"/"r").
func (r Reducability) String() string {
	if r == Strict {
		return "s"
	}
	return "r"
}

// Atom is the atomic constraint "sum of stats >= value", with a reducability
// marker. An Atom is empty (trivially satisfied, and dropped from display)
// iff it has no stats and a zero value.
type Atom struct {
	Reducability Reducability
	Value        int
	Stats        stat.Set
}

// NewAtom builds an atom with the given reducability and no stats/value.
func NewAtom(r Reducability) Atom {
	return Atom{Reducability: r}
}

// WithValue returns a copy of the atom with Value set to v.
func (a Atom) WithValue(v int) Atom {
	a.Value = v
	return a
}

// WithStat returns a copy of the atom with stat s added to its stat set.
func (a Atom) WithStat(s stat.Stat) Atom {
	a.Stats = a.Stats.Add(s)
	return a
}

// IsEmpty reports whether the atom is trivially satisfied: no stats and a
// zero value.
func (a Atom) IsEmpty() bool {
	return len(a.Stats) == 0 && a.Value == 0
}

// SatisfiedBy reports whether the sum of the atom's stats (reading Total as
// the StatMap's Cost) meets or exceeds Value.
func (a Atom) SatisfiedBy(sm statmap.StatMap) bool {
	sum := 0
	for _, s := range a.Stats {
		if s == stat.Total {
			sum += sm.Cost()
		} else {
			sum += sm.Get(s)
		}
	}
	return sum >= a.Value
}

// Less gives atoms a total order by (reducability, value, stats), which is
// what lets Clause canonicalize its member atoms into a stable ordered set.
func (a Atom) Less(other Atom) bool {
	if a.Reducability != other.Reducability {
		return a.Reducability < other.Reducability
	}
	if a.Value != other.Value {
		return a.Value < other.Value
	}
	return a.Stats.Less(other.Stats)
}

// Equal reports whether two atoms are identical in reducability, value, and
// stat set.
func (a Atom) Equal(other Atom) bool {
	return a.Reducability == other.Reducability && a.Value == other.Value && a.Stats.Equal(other.Stats)
}

// String renders the atom using the textual grammar's display form:
// "<value><R|S> <SHORT>" for a single stat, or "<SHORT> + ... = <value><R|S>"
// for a sum.
func (a Atom) String() string {
	if len(a.Stats) == 1 {
		return fmt.Sprintf("%d%s %s", a.Value, a.Reducability, a.Stats.First().ShortName())
	}

	names := make([]string, len(a.Stats))
	for i, s := range a.Stats {
		names[i] = s.ShortName()
	}
	return fmt.Sprintf("%s = %d%s", strings.Join(names, " + "), a.Value, a.Reducability)
}
