// Package config loads and validates the engine settings that parameterize
// stat and shrine-order behavior: the point-budget ceiling, the shrine
// divergence cap, the stat ceiling, and any named racial-baseline presets
// a build planner wants to redistribute against.
package config

import (
	"github.com/pkg/errors"

	"github.com/pocamind/deep-go/shrine"
	"github.com/pocamind/deep-go/statmap"
)

// DefaultMaxTotal re-exports statmap.DefaultMaxTotal as the default for the
// user-overridable maxTotal setting.
const DefaultMaxTotal = statmap.DefaultMaxTotal

// DefaultShrineDiffCap and DefaultStatCap mirror shrine.DiffCap and
// shrine.StatCap as plain ints, matching the YAML field types a settings
// document overrides them through.
const (
	DefaultShrineDiffCap int = shrine.DiffCap
	DefaultStatCap       int = shrine.StatCap
)

// EngineSettings overrides the numeric constants the core otherwise
// assumes: the level-cap point budget, the shrine-order divergence cap,
// and the absolute stat ceiling.
type EngineSettings struct {
	MaxTotal      int `yaml:"maxTotal"`
	ShrineDiffCap int `yaml:"shrineDiffCap"`
	StatCap       int `yaml:"statCap"`
}

// DefaultEngineSettings constructs settings with the compiled-in defaults.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		MaxTotal:      DefaultMaxTotal,
		ShrineDiffCap: DefaultShrineDiffCap,
		StatCap:       DefaultStatCap,
	}
}

// Apply overrides the base settings with any positive values set in
// overlay, leaving the rest at their base values.
func (s *EngineSettings) Apply(overlay EngineSettings) {
	if overlay.MaxTotal > 0 {
		s.MaxTotal = overlay.MaxTotal
	}
	if overlay.ShrineDiffCap > 0 {
		s.ShrineDiffCap = overlay.ShrineDiffCap
	}
	if overlay.StatCap > 0 {
		s.StatCap = overlay.StatCap
	}
}

// ShrineCaps converts the settings into the Caps shrine.Order expects,
// overriding its compiled-in DiffCap/StatCap defaults.
func (s EngineSettings) ShrineCaps() shrine.Caps {
	return shrine.Caps{DiffCap: float64(s.ShrineDiffCap), StatCap: s.StatCap}
}

// Remaining returns sm.RemainingWithCap(s.MaxTotal), applying this
// settings document's point-budget override instead of
// statmap.DefaultMaxTotal.
func (s EngineSettings) Remaining(sm statmap.StatMap) int {
	return sm.RemainingWithCap(s.MaxTotal)
}

// Validate reports whether the settings are sane: every field must be
// positive, and the shrine divergence cap cannot exceed the stat cap
// (a shrine could never drop a stat below zero otherwise).
func (s EngineSettings) Validate() error {
	if s.MaxTotal <= 0 {
		return errors.New("maxTotal must be greater than zero")
	}
	if s.ShrineDiffCap <= 0 {
		return errors.New("shrineDiffCap must be greater than zero")
	}
	if s.StatCap <= 0 {
		return errors.New("statCap must be greater than zero")
	}
	if s.ShrineDiffCap > s.StatCap {
		return errors.New("shrineDiffCap cannot exceed statCap")
	}
	return nil
}
