// Package stat defines the closed enumeration of character statistics used
// throughout a build: six core attributes, three weapon proficiencies, seven
// magic attunements, and the pseudo-stat Total.
package stat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stat identifies a single character statistic, or the pseudo-stat Total.
type Stat int

// The full set of stats, in canonical order. Total is never stored in a
// StatMap; it is only referenced from requirement atoms to mean "point cost".
const (
	Strength Stat = iota
	Fortitude
	Agility
	Intelligence
	Willpower
	Charisma
	HeavyWeapon
	MediumWeapon
	LightWeapon
	Frostdraw
	Flamecharm
	Thundercall
	Galebreathe
	Shadowcast
	Ironsing
	Bloodrend
	Total
)

// All lists every Stat in canonical order, including Total.
var All = []Stat{
	Strength, Fortitude, Agility, Intelligence, Willpower, Charisma,
	HeavyWeapon, MediumWeapon, LightWeapon,
	Frostdraw, Flamecharm, Thundercall, Galebreathe, Shadowcast, Ironsing, Bloodrend,
	Total,
}

var upperCaser = cases.Upper(language.Und)

var longNames = map[Stat]string{
	Strength:     "Strength",
	Fortitude:    "Fortitude",
	Agility:      "Agility",
	Intelligence: "Intelligence",
	Willpower:    "Willpower",
	Charisma:     "Charisma",
	HeavyWeapon:  "Heavy",
	MediumWeapon: "Medium",
	LightWeapon:  "Light",
	Frostdraw:    "Frostdraw",
	Flamecharm:   "Flamecharm",
	Thundercall:  "Thundercall",
	Galebreathe:  "Galebreathe",
	Shadowcast:   "Shadowcast",
	Ironsing:     "Ironsing",
	Bloodrend:    "Bloodrend",
	Total:        "Total",
}

var shortNames = map[Stat]string{
	Strength:     "STR",
	Fortitude:    "FTD",
	Agility:      "AGL",
	Intelligence: "INT",
	Willpower:    "WLL",
	Charisma:     "CHA",
	HeavyWeapon:  "HVY",
	MediumWeapon: "MED",
	LightWeapon:  "LHT",
	Frostdraw:    "ICE",
	Flamecharm:   "FLM",
	Thundercall:  "LTN",
	Galebreathe:  "WND",
	Shadowcast:   "SDW",
	Ironsing:     "MTL",
	Bloodrend:    "BLD",
	Total:        "TTL",
}

// nameLookup maps every accepted long-name spelling (upper-cased) to its Stat.
var nameLookup = map[string]Stat{
	"STRENGTH":     Strength,
	"FORTITUDE":    Fortitude,
	"AGILITY":      Agility,
	"INTELLIGENCE": Intelligence,
	"WILLPOWER":    Willpower,
	"CHARISMA":     Charisma,
	"HEAVY WEP.":   HeavyWeapon,
	"HEAVY":        HeavyWeapon,
	"MEDIUM WEP.":  MediumWeapon,
	"MEDIUM":       MediumWeapon,
	"LIGHT WEP.":   LightWeapon,
	"LIGHT":        LightWeapon,
	"FROSTDRAW":    Frostdraw,
	"FLAMECHARM":   Flamecharm,
	"THUNDERCALL":  Thundercall,
	"GALEBREATHE":  Galebreathe,
	"SHADOWCAST":   Shadowcast,
	"IRONSING":     Ironsing,
	"BLOODREND":    Bloodrend,
	"TOTAL":        Total,
}

// shortNameLookup maps every accepted short-name spelling (upper-cased,
// including alternates like AGI for AGL) to its Stat.
var shortNameLookup = map[string]Stat{
	"STR": Strength,
	"FTD": Fortitude,
	"AGL": Agility,
	"AGI": Agility,
	"INT": Intelligence,
	"WLL": Willpower,
	"WIL": Willpower,
	"CHA": Charisma,
	"HVY": HeavyWeapon,
	"MED": MediumWeapon,
	"LHT": LightWeapon,
	"ICE": Frostdraw,
	"FLM": Flamecharm,
	"FIR": Flamecharm,
	"LTN": Thundercall,
	"WND": Galebreathe,
	"SDW": Shadowcast,
	"MTL": Ironsing,
	"BLD": Bloodrend,
	"TTL": Total,
	"TOT": Total,
}

// Name returns the canonical long name for the stat.
func (s Stat) Name() string {
	if name, ok := longNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ShortName returns the canonical three-letter short name for the stat.
func (s Stat) ShortName() string {
	if name, ok := shortNames[s]; ok {
		return name
	}
	return "UNK"
}

// String implements fmt.Stringer.
func (s Stat) String() string {
	return s.Name()
}

// IsAttunement reports whether the stat is one of the seven magic schools.
func (s Stat) IsAttunement() bool {
	switch s {
	case Frostdraw, Flamecharm, Thundercall, Galebreathe, Shadowcast, Ironsing, Bloodrend:
		return true
	default:
		return false
	}
}

// FromName parses a case-insensitive long name into a Stat.
func FromName(name string) (Stat, bool) {
	s, ok := nameLookup[upperCaser.String(strings.TrimSpace(name))]
	return s, ok
}

// FromShortName parses a case-insensitive short name (including accepted
// alternates) into a Stat.
func FromShortName(short string) (Stat, bool) {
	s, ok := shortNameLookup[upperCaser.String(strings.TrimSpace(short))]
	return s, ok
}

// FromAnyName tries FromShortName first, then FromName, mirroring the
// reference implementation's FromStr precedence.
func FromAnyName(name string) (Stat, bool) {
	if s, ok := FromShortName(name); ok {
		return s, true
	}
	return FromName(name)
}
