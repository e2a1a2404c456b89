package reqtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocamind/deep-go/req"
)

func named(name string, prereqs ...string) req.Requirement {
	r := req.NewRequirement().WithName(name)
	for _, p := range prereqs {
		r = r.WithPrereq(p)
	}
	return r
}

func TestInsertAndGet(t *testing.T) {
	tree := New()
	tree.Insert(named("base"))
	tree.Insert(named("armor", "base"))

	r, ok := tree.Get("armor")
	assert.True(t, ok)
	assert.Equal(t, []string{"base"}, r.Prereqs)

	_, ok = tree.Get("missing")
	assert.False(t, ok)
}

func TestDependents(t *testing.T) {
	tree := New()
	tree.Insert(named("base"))
	tree.Insert(named("armor", "base"))
	tree.Insert(named("shield", "base"))

	deps := tree.Dependents("base")
	assert.Len(t, deps, 2)
	_, hasArmor := deps["armor"]
	_, hasShield := deps["shield"]
	assert.True(t, hasArmor)
	assert.True(t, hasShield)
}

func TestAllPrereqsTransitive(t *testing.T) {
	tree := New()
	tree.Insert(named("base"))
	tree.Insert(named("armor", "base"))
	tree.Insert(named("reinforced", "armor"))

	all := tree.AllPrereqs("reinforced")
	assert.Len(t, all, 2)
	_, hasArmor := all["armor"]
	_, hasBase := all["base"]
	assert.True(t, hasArmor)
	assert.True(t, hasBase)
}

func TestAllDependentsTransitive(t *testing.T) {
	tree := New()
	tree.Insert(named("base"))
	tree.Insert(named("armor", "base"))
	tree.Insert(named("reinforced", "armor"))

	all := tree.AllDependents("base")
	assert.Len(t, all, 2)
}

func TestFindCycleNoneWhenAcyclic(t *testing.T) {
	tree := New()
	tree.Insert(named("base"))
	tree.Insert(named("armor", "base"))

	assert.Nil(t, tree.FindCycle())
}

func TestFindCycleDetectsSelfReference(t *testing.T) {
	tree := New()
	tree.Insert(named("a", "a"))

	cycle := tree.FindCycle()
	assert.Equal(t, []string{"a"}, cycle)
}

func TestFindCycleDetectsLongerLoop(t *testing.T) {
	tree := New()
	tree.Insert(named("a", "b"))
	tree.Insert(named("b", "c"))
	tree.Insert(named("c", "a"))

	cycle := tree.FindCycle()
	assert.Len(t, cycle, 3)
}

func TestCycleString(t *testing.T) {
	assert.Equal(t, "a => b", CycleString([]string{"a", "b"}))
	assert.Equal(t, "a", CycleString([]string{"a"}))
	assert.Equal(t, "", CycleString(nil))
}
