package stat

import "sort"

// Set is an ordered set of stats, sorted by their enum value. Two sets built
// from the same members in any insertion order compare equal element-wise,
// which is what lets Atom/Clause canonicalize for equality and ordering.
type Set []Stat

// NewSet builds a Set from the given stats, deduplicating and sorting them.
func NewSet(stats ...Stat) Set {
	var s Set
	for _, st := range stats {
		s = s.Add(st)
	}
	return s
}

// Add returns a new Set with stat inserted, preserving sort order.
func (s Set) Add(st Stat) Set {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= st })
	if i < len(s) && s[i] == st {
		return s
	}
	next := make(Set, 0, len(s)+1)
	next = append(next, s[:i]...)
	next = append(next, st)
	next = append(next, s[i:]...)
	return next
}

// Contains reports whether st is a member of the set.
func (s Set) Contains(st Stat) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= st })
	return i < len(s) && s[i] == st
}

// Equal reports whether two sets contain the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Less reports whether s sorts before other, comparing element-wise then by
// length (used to give Atom a total order).
func (s Set) Less(other Set) bool {
	for i := 0; i < len(s) && i < len(other); i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return len(s) < len(other)
}

// First returns the first (smallest) stat in the set. Panics if the set is
// empty; callers must check that the set is non-empty first.
func (s Set) First() Stat {
	return s[0]
}
