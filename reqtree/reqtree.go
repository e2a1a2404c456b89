// Package reqtree indexes a set of requirements by name and exposes their
// prerequisite/dependent graph, including cycle detection.
package reqtree

import (
	"strings"

	"github.com/pocamind/deep-go/req"
)

// ReqTree indexes requirements by name and tracks, for each name, the set
// of other requirements that directly depend on it.
type ReqTree struct {
	reqs       map[string]req.Requirement
	dependents map[string]map[string]struct{}
}

// New returns an empty ReqTree.
func New() *ReqTree {
	return &ReqTree{
		reqs:       make(map[string]req.Requirement),
		dependents: make(map[string]map[string]struct{}),
	}
}

// Insert adds r to the tree, keyed by its name (or, if unnamed, its
// derived display string), and records it as a dependent of each of its
// prereqs.
func (t *ReqTree) Insert(r req.Requirement) {
	name := r.IdentityString()

	for _, prereq := range r.Prereqs {
		if t.dependents[prereq] == nil {
			t.dependents[prereq] = make(map[string]struct{})
		}
		t.dependents[prereq][name] = struct{}{}
	}

	t.reqs[name] = r
}

// Get returns the requirement stored under name, if any.
func (t *ReqTree) Get(name string) (req.Requirement, bool) {
	r, ok := t.reqs[name]
	return r, ok
}

// Prereqs returns the direct prerequisite names of the requirement stored
// under name.
func (t *ReqTree) Prereqs(name string) ([]string, bool) {
	r, ok := t.reqs[name]
	if !ok {
		return nil, false
	}
	return r.Prereqs, true
}

// Dependents returns the names of requirements that directly list name as
// a prereq.
func (t *ReqTree) Dependents(name string) map[string]struct{} {
	return t.dependents[name]
}

// AllPrereqs returns, via BFS, every prerequisite name reachable
// transitively from name.
func (t *ReqTree) AllPrereqs(name string) map[string]struct{} {
	visited := make(map[string]struct{})
	var queue []string

	if r, ok := t.reqs[name]; ok {
		queue = append(queue, r.Prereqs...)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		if r, ok := t.reqs[current]; ok {
			queue = append(queue, r.Prereqs...)
		}
	}

	return visited
}

// AllDependents returns, via BFS, every dependent name reachable
// transitively from name.
func (t *ReqTree) AllDependents(name string) map[string]struct{} {
	visited := make(map[string]struct{})
	var queue []string

	for dep := range t.dependents[name] {
		queue = append(queue, dep)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		for dep := range t.dependents[current] {
			queue = append(queue, dep)
		}
	}

	return visited
}

// FindCycle returns the names forming a dependency cycle, if one exists.
func (t *ReqTree) FindCycle() []string {
	visited := make(map[string]struct{})
	stack := make(map[string]struct{})
	var path []string

	for name := range t.reqs {
		if cycle := t.cycleVisit(name, visited, stack, &path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (t *ReqTree) cycleVisit(name string, visited, stack map[string]struct{}, path *[]string) []string {
	if _, onStack := stack[name]; onStack {
		for i, n := range *path {
			if n == name {
				return append([]string(nil), (*path)[i:]...)
			}
		}
	}
	if _, seen := visited[name]; seen {
		return nil
	}

	visited[name] = struct{}{}
	stack[name] = struct{}{}
	*path = append(*path, name)

	if r, ok := t.reqs[name]; ok {
		for _, prereq := range r.Prereqs {
			if cycle := t.cycleVisit(prereq, visited, stack, path); cycle != nil {
				return cycle
			}
		}
	}

	delete(stack, name)
	*path = (*path)[:len(*path)-1]
	return nil
}

// CycleString renders the DFS path suffix from the re-entered name as
// "a => b => c", matching FindCycle's return value exactly (the closing
// edge back to the first name is implied, not repeated).
func CycleString(cycle []string) string {
	return strings.Join(cycle, " => ")
}
