package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

// RacialPreset is a named baseline a shrine-order redistribution can be run
// against: the innate stat values a race grants before any points are
// spent. Baseline is keyed by short stat name so the document stays
// human-editable.
type RacialPreset struct {
	Name     string         `yaml:"name"`
	Baseline map[string]int `yaml:"baseline"`
}

// PresetSet is the full collection of racial-baseline presets a settings
// document declares.
type PresetSet struct {
	Presets []RacialPreset `yaml:"presets"`
}

// Validate checks that every preset names only recognized stats.
func (ps PresetSet) Validate() error {
	for _, preset := range ps.Presets {
		if _, err := preset.StatMap(); err != nil {
			return errors.Wrapf(err, "validation error in racial preset %s", preset.Name)
		}
	}
	return nil
}

// StatMap converts the preset's baseline into a statmap.StatMap, failing if
// any key is not a recognized stat short name.
func (p RacialPreset) StatMap() (statmap.StatMap, error) {
	sm := statmap.New()
	for name, value := range p.Baseline {
		s, ok := stat.FromShortName(name)
		if !ok {
			return statmap.StatMap{}, fmt.Errorf("unrecognized stat %q in racial preset %q", name, p.Name)
		}
		sm.Set(s, value)
	}
	return sm, nil
}

// WithOverride returns a copy of the preset with overlay's entries merged
// into its baseline, overlay values winning on key collisions.
func (p RacialPreset) WithOverride(overlay map[string]int) RacialPreset {
	base := make(map[string]int, len(p.Baseline))
	for k, v := range p.Baseline {
		base[k] = v
	}
	merged := MergeRecursive(base, overlay).(map[string]int)
	return RacialPreset{Name: p.Name, Baseline: merged}
}

// Lookup returns the named preset's baseline StatMap, or false if no
// preset by that name exists.
func (ps PresetSet) Lookup(name string) (statmap.StatMap, bool) {
	for _, preset := range ps.Presets {
		if preset.Name == name {
			sm, err := preset.StatMap()
			if err != nil {
				return statmap.StatMap{}, false
			}
			return sm, true
		}
	}
	return statmap.StatMap{}, false
}
