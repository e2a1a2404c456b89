package req

import (
	"sort"
	"strings"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

// Requirement is an AND of clauses, with an optional name and an ordered
// list of prerequisite requirement names it depends on.
type Requirement struct {
	Name    *string
	Prereqs []string
	Clauses []Clause
}

// NewRequirement builds an empty, unnamed, prereq-free requirement.
func NewRequirement() Requirement {
	return Requirement{}
}

// WithName returns a copy of the requirement with its name set.
func (r Requirement) WithName(name string) Requirement {
	r.Name = &name
	return r
}

// WithPrereq returns a copy of the requirement with name appended to its
// ordered prerequisite list.
func (r Requirement) WithPrereq(name string) Requirement {
	next := make([]string, len(r.Prereqs), len(r.Prereqs)+1)
	copy(next, r.Prereqs)
	r.Prereqs = append(next, name)
	return r
}

// WithClause returns a copy of the requirement with clause appended.
func (r Requirement) WithClause(c Clause) Requirement {
	next := make([]Clause, len(r.Clauses), len(r.Clauses)+1)
	copy(next, r.Clauses)
	r.Clauses = append(next, c)
	return r
}

// IsEmpty reports whether the requirement has no non-empty clause, i.e. it
// is trivially satisfied (the "()" form).
func (r Requirement) IsEmpty() bool {
	for _, c := range r.Clauses {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// SatisfiedBy reports whether every clause in the requirement holds
// against sm.
func (r Requirement) SatisfiedBy(sm statmap.StatMap) bool {
	for _, c := range r.Clauses {
		if !c.SatisfiedBy(sm) {
			return false
		}
	}
	return true
}

// clauseSet returns a sorted copy of r.Clauses, used so that clause-set
// comparison does not depend on the order clauses were added in.
func (r Requirement) clauseSet() []Clause {
	set := make([]Clause, len(r.Clauses))
	copy(set, r.Clauses)
	sort.Slice(set, func(i, j int) bool { return set[i].Less(set[j]) })
	return set
}

// clausesEqual reports whether r and other hold the same clauses,
// regardless of the order each was built in.
func (r Requirement) clausesEqual(other Requirement) bool {
	a, b := r.clauseSet(), other.clauseSet()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// IdentityString is the requirement's explicit Name if it has one,
// otherwise its own Display string (which, with no name set, still carries
// any prereq prefix). Equal compares two requirements' identity strings
// rather than requiring both to be named or both unnamed, so a requirement
// parsed with an explicit name compares equal to an equivalent unnamed one
// only when the name happens to match the derived string.
func (r Requirement) IdentityString() string {
	if r.Name != nil {
		return *r.Name
	}
	return r.String()
}

func (r Requirement) clauseString() string {
	if r.IsEmpty() {
		return "()"
	}
	parts := make([]string, 0, len(r.Clauses))
	for _, c := range r.Clauses {
		if !c.IsEmpty() {
			parts = append(parts, c.String())
		}
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether two requirements hold the same clauses (as an
// unordered set) and share the same identity string, which is what lets a
// parsed requirement compare equal to any other textual variant of the same
// formula, named or not.
func (r Requirement) Equal(other Requirement) bool {
	return r.clausesEqual(other) && r.IdentityString() == other.IdentityString()
}

// String renders the requirement using the textual grammar's display form:
// an optional "<prereqs> => " prefix, an optional "<name> := " prefix, then
// "()" if the requirement is trivially satisfied, otherwise its clauses
// joined by ", ".
func (r Requirement) String() string {
	var b strings.Builder
	if len(r.Prereqs) > 0 {
		b.WriteString(strings.Join(r.Prereqs, ", "))
		b.WriteString(" => ")
	}
	if r.Name != nil {
		b.WriteString(*r.Name)
		b.WriteString(" := ")
	}
	b.WriteString(r.clauseString())
	return b.String()
}

// AddToAll returns a copy of the requirement with delta added to the Value
// of every atom in every clause, clamped to [0, 100]. Useful for scaling a
// whole requirement's difficulty uniformly.
func (r Requirement) AddToAll(delta int) Requirement {
	next := make([]Clause, len(r.Clauses))
	for i, c := range r.Clauses {
		atoms := make(AtomSet, 0, len(c.Atoms))
		for _, a := range c.Atoms {
			v := clamp(a.Value+delta, 0, 100)
			atoms = atoms.Add(a.WithValue(v))
		}
		next[i] = Clause{Type: c.Type, Atoms: atoms}
	}
	r.Clauses = next
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UsedStats returns the set of every stat referenced by any atom in the
// requirement, excluding Total.
func (r Requirement) UsedStats() stat.Set {
	var used stat.Set
	for _, c := range r.Clauses {
		for _, a := range c.Atoms {
			for _, s := range a.Stats {
				if s == stat.Total {
					continue
				}
				used = used.Add(s)
			}
		}
	}
	return used
}

// StrictAtoms returns every atom across the requirement's clauses whose
// reducability is Strict.
func (r Requirement) StrictAtoms() []Atom {
	var strict []Atom
	for _, c := range r.Clauses {
		for _, a := range c.Atoms {
			if a.Reducability == Strict {
				strict = append(strict, a)
			}
		}
	}
	return strict
}

// AndClauses returns the requirement's conjunction clauses, in their
// stored order.
func (r Requirement) AndClauses() []Clause {
	return r.clausesOfType(And)
}

// OrClauses returns the requirement's disjunction clauses, in their stored
// order.
func (r Requirement) OrClauses() []Clause {
	return r.clausesOfType(Or)
}

func (r Requirement) clausesOfType(t ClauseType) []Clause {
	var out []Clause
	for _, c := range r.Clauses {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
