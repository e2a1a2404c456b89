package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRuleSet(t *testing.T) {
	doc := Document{
		Settings: EngineSettings{MaxTotal: 700, ShrineDiffCap: 25, StatCap: 100},
		Presets: PresetSet{Presets: []RacialPreset{
			{Name: "stoneborn", Baseline: map[string]int{"STR": 20}},
		}},
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deep", "settings.yaml")

	require.NoError(t, SaveRuleSet(path, doc))

	loaded, err := LoadRuleSet(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoadRuleSetMissingFileReturnsNotExist(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}
