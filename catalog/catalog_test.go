package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocamind/deep-go/req"
)

func TestNameToIdentifierNormalizesPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "blade_of_the_forgotten_king", NameToIdentifier("Blade of the Forgotten-King"))
	assert.Equal(t, "shimmerwing_aspect", NameToIdentifier("Shimmerwing [Aspect]"))
	assert.Equal(t, "fathers_cane", NameToIdentifier("Father's Cane"))
	assert.Equal(t, "ratio_12", NameToIdentifier("Ratio: 1,2"))
}

type fakeEntry struct{ r req.Requirement }

func (f fakeEntry) Reqs() req.Requirement { return f.r }

func TestEntryExposesParsedRequirement(t *testing.T) {
	want := req.NewRequirement().WithClause(req.NewClause(req.And))
	var e Entry = fakeEntry{r: want}
	assert.True(t, e.Reqs().Equal(want))
}
