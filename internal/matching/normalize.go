package matching

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonSearchableRe matches every run of characters outside the searchable
// alphabet: lowercase ASCII letters, digits, Cyrillic, and CJK ideographs.
// The latter two keep transcriptions from the supported non-Latin locales
// matchable instead of collapsing them to whitespace.
var nonSearchableRe = regexp.MustCompile(`[^a-z0-9\x{0400}-\x{04FF}\x{4E00}-\x{9FFF}]+`)

// stripDiacritics applies NFD decomposition, drops combining marks, and
// recomposes. "Beton C25" and "Béton C25" normalize to the same key.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize converts free text into a search key: lowercase, diacritics
// stripped, every run outside the searchable alphabet collapsed to a single
// space, trimmed. Total function; blank input normalizes to "".
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = nonSearchableRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// tokenSorted returns the key with its tokens in sorted order, so "sheet
// drywall" and "drywall sheet" compare equal.
func tokenSorted(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s
	}
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// tokenSet builds the distinct-token set of a normalized string.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
