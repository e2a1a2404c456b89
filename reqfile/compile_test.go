package reqfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocamind/deep-go/stat"
)

func TestCompileSimpleGeneralList(t *testing.T) {
	rf, err := Compile("90 FTD\n25 STR OR 25 AGL\n", nil)
	require.NoError(t, err)
	assert.Len(t, rf.General, 2)
	assert.Empty(t, rf.Post)
}

func TestCompileSkipsBlankAndCommentLines(t *testing.T) {
	rf, err := Compile("# a comment\n\n// another comment\n90 FTD\n", nil)
	require.NoError(t, err)
	assert.Len(t, rf.General, 1)
}

func TestCompileFreeAndPostSections(t *testing.T) {
	rf, err := Compile("Free:\n90 FTD\nPost:\n50 STR\n", nil)
	require.NoError(t, err)
	assert.Len(t, rf.General, 1)
	assert.Len(t, rf.Post, 1)
}

func TestCompileNamedRequirementWithInlinePrereq(t *testing.T) {
	rf, err := Compile("base := 50 STR\nbase => armor := 90 FTD\n", nil)
	require.NoError(t, err)
	require.Len(t, rf.General, 2)

	var armor bool
	for _, r := range rf.General {
		if r.Name != nil && *r.Name == "armor" {
			armor = true
			assert.Equal(t, []string{"base"}, r.Prereqs)
		}
	}
	assert.True(t, armor)
}

func TestCompileDependencyWithIdentifierStatement(t *testing.T) {
	rf, err := Compile("base := 50 STR\narmor := 90 FTD\nbase => armor\n", nil)
	require.NoError(t, err)

	for _, r := range rf.General {
		if r.Name != nil && *r.Name == "armor" {
			assert.Equal(t, []string{"base"}, r.Prereqs)
		}
	}
}

func TestCompileDependencyStatementUnknownDependentErrors(t *testing.T) {
	_, err := Compile("base := 50 STR\nbase => missing\n", nil)
	assert.Error(t, err)
}

func TestCompileDependencyStatementUnknownPrereqErrors(t *testing.T) {
	_, err := Compile("armor := 90 FTD\nmissing => armor\n", nil)
	assert.Error(t, err)
}

func TestCompileDuplicateNamedIdentifierErrors(t *testing.T) {
	_, err := Compile("base := 50 STR\nbase := 60 STR\n", nil)
	assert.Error(t, err)
}

func TestCompileDuplicateAnonymousWithoutPrereqsAreBothKept(t *testing.T) {
	rf, err := Compile("90 FTD\n90 FTD\n", nil)
	require.NoError(t, err)
	assert.Len(t, rf.General, 2)
}

func TestCompileCycleDetectionErrors(t *testing.T) {
	_, err := Compile("b => a := 50 STR\na => b := 50 AGL\n", nil)
	assert.Error(t, err)
}

func TestCompileOptionalGroupPullsInPrereqs(t *testing.T) {
	rf, err := Compile("base := 50 STR\n2; base => armor := 90 FTD\n", nil)
	require.NoError(t, err)

	require.Len(t, rf.Optional, 1)
	assert.Equal(t, 2, rf.Optional[0].Weight)
	assert.Len(t, rf.Optional[0].General, 2)
	assert.Empty(t, rf.General)
}

func TestCompileRequiredDependentOnOptionalErrors(t *testing.T) {
	_, err := Compile("1; base := 50 STR\nbase => armor := 90 FTD\n", nil)
	assert.Error(t, err)
}

func TestCompileForceRequiredOverridesOptional(t *testing.T) {
	rf, err := Compile("+base := 50 STR\n1; base => armor := 90 FTD\n", nil)
	require.NoError(t, err)
	require.Len(t, rf.General, 1)
	assert.Equal(t, "base", *rf.General[0].Name)
	require.Len(t, rf.Optional, 1)
	assert.Len(t, rf.Optional[0].General, 1)
}

func TestCompileInvalidWeightErrors(t *testing.T) {
	_, err := Compile("25; base := 50 STR\n", nil)
	assert.Error(t, err)
}

func TestEmitRoundTripsAnonymousPrereqsWithSyntheticNames(t *testing.T) {
	rf, err := Compile("base := 50 STR\nbase => 90 FTD\n", nil)
	require.NoError(t, err)

	out := Emit(rf)
	assert.Contains(t, out, "Free:")
	assert.Contains(t, out, "base := 50s STR")
	assert.Contains(t, out, "id_")
}

func TestMaxStatMapAndMaxTotalRequirement(t *testing.T) {
	rf, err := Compile("50 STR\n75 STR\n60 TOT\n", nil)
	require.NoError(t, err)

	maxes := MaxStatMap(rf.ReqIter())
	assert.Equal(t, 75, maxes.Get(stat.Strength))
	assert.Equal(t, 60, MaxTotalRequirement(rf.ReqIter()))
}
