package matching

import "strings"

// unitAliases resolves the unit spellings seen in voice transcripts and
// imported price lists to a small canonical vocabulary. Lookup happens after
// Normalize plus internal-space stripping, so "Square Meters" arrives here
// as "squaremeters".
var unitAliases = map[string]string{
	// time
	"h": "hour", "hr": "hour", "hrs": "hour", "hour": "hour", "hours": "hour",
	// count
	"ea": "each", "each": "each", "pc": "each", "pcs": "each",
	"piece": "each", "pieces": "each", "unit": "each", "units": "each",
	// area
	"m2": "sqm", "sqm": "sqm", "sqmeter": "sqm", "sqmeters": "sqm",
	"squaremeter": "sqm", "squaremeters": "sqm",
	"squaremetre": "sqm", "squaremetres": "sqm",
	// volume
	"l": "liter", "lt": "liter", "ltr": "liter",
	"liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter",
	// mass
	"kg": "kilogram", "kgs": "kilogram", "kilo": "kilogram", "kilos": "kilogram",
	"kilogram": "kilogram", "kilograms": "kilogram",
	// length
	"ft": "foot", "foot": "foot", "feet": "foot",
	"m": "meter", "meter": "meter", "meters": "meter",
	"metre": "meter", "metres": "meter",
}

// NormalizeUnit maps a raw unit string to its canonical form. Blank input
// yields "". Unknown units come back normalized but unmapped, so two entries
// carrying the same unrecognized unit still agree with each other.
func NormalizeUnit(raw string) string {
	u := Normalize(raw)
	if u == "" {
		return ""
	}
	u = strings.ReplaceAll(u, " ", "")
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}
