package req

import (
	"sort"
	"strings"

	"github.com/pocamind/deep-go/statmap"
)

// AtomSet is an ordered, deduplicated set of atoms, sorted by Atom.Less.
type AtomSet []Atom

// Add returns a new AtomSet with atom inserted in sorted position. If an
// equal atom is already present, the set is returned unchanged.
func (s AtomSet) Add(atom Atom) AtomSet {
	i := sort.Search(len(s), func(i int) bool { return !s[i].Less(atom) })
	if i < len(s) && s[i].Equal(atom) {
		return s
	}
	next := make(AtomSet, 0, len(s)+1)
	next = append(next, s[:i]...)
	next = append(next, atom)
	next = append(next, s[i:]...)
	return next
}

// Contains reports whether an equal atom is a member of the set.
func (s AtomSet) Contains(atom Atom) bool {
	i := sort.Search(len(s), func(i int) bool { return !s[i].Less(atom) })
	return i < len(s) && s[i].Equal(atom)
}

// Equal reports whether two atom sets contain the same members.
func (s AtomSet) Equal(other AtomSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Less gives atom sets a total order, comparing element-wise then by
// length. Used to canonicalize a Requirement's clause list for equality.
func (s AtomSet) Less(other AtomSet) bool {
	for i := 0; i < len(s) && i < len(other); i++ {
		if !s[i].Equal(other[i]) {
			return s[i].Less(other[i])
		}
	}
	return len(s) < len(other)
}

// ClauseType distinguishes a conjunction from a disjunction of atoms.
type ClauseType int

const (
	And ClauseType = iota
	Or
)

// Clause is a disjunction (Or) or conjunction (And) of atoms.
type Clause struct {
	Type  ClauseType
	Atoms AtomSet
}

// NewClause builds an empty clause of the given type.
func NewClause(t ClauseType) Clause {
	return Clause{Type: t}
}

// WithAtom returns a copy of the clause with atom inserted.
func (c Clause) WithAtom(atom Atom) Clause {
	c.Atoms = c.Atoms.Add(atom)
	return c
}

// IsEmpty reports whether the clause has no non-empty atom.
func (c Clause) IsEmpty() bool {
	for _, a := range c.Atoms {
		if !a.IsEmpty() {
			return false
		}
	}
	return true
}

// SatisfiedBy reports whether the clause holds against sm: all atoms for
// And, any atom for Or.
func (c Clause) SatisfiedBy(sm statmap.StatMap) bool {
	switch c.Type {
	case And:
		for _, a := range c.Atoms {
			if !a.SatisfiedBy(sm) {
				return false
			}
		}
		return true
	case Or:
		for _, a := range c.Atoms {
			if a.SatisfiedBy(sm) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Equal reports whether two clauses have the same type and atom set.
func (c Clause) Equal(other Clause) bool {
	return c.Type == other.Type && c.Atoms.Equal(other.Atoms)
}

// Less gives clauses a total order by (type, atoms), letting a Requirement
// canonicalize its clause list the same way Atom canonicalizes a Clause's
// atom set.
func (c Clause) Less(other Clause) bool {
	if c.Type != other.Type {
		return c.Type < other.Type
	}
	return c.Atoms.Less(other.Atoms)
}

// String joins the clause's non-empty atoms with ", " for And or " OR " for
// Or.
func (c Clause) String() string {
	joiner := ", "
	if c.Type == Or {
		joiner = " OR "
	}

	parts := make([]string, 0, len(c.Atoms))
	for _, a := range c.Atoms {
		if !a.IsEmpty() {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, joiner)
}
