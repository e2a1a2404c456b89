// Package catalog defines the boundary the core shares with a data-catalog
// collaborator: a key-normalization function and the minimal interface a
// catalog record must satisfy to contribute a requirement. The records
// themselves (talents, mantras, weapons, outfits, aspects) are out of
// scope; only this boundary is specified.
package catalog

import "strings"

var nameCleaner = strings.NewReplacer(
	" ", "_",
	"[", "",
	"]", "",
	"'", "",
	":", "",
	"(", "",
	")", "",
	",", "",
	"-", "_",
)

// NameToIdentifier normalizes an in-game display name into the key a
// catalog map uses: spaces and hyphens become underscores, the characters
// "[]':(),", are deleted, and the result is lowercased.
func NameToIdentifier(s string) string {
	return strings.ToLower(nameCleaner.Replace(s))
}
