package matching

import (
	"math"
	"strings"

	"github.com/fieldquote/pricing-service/internal/types"
)

// IndexedEntry is a catalog entry prepared for matching: the source entry,
// its canonical unit, and the deduplicated set of normalized search keys
// derived from name and aliases.
type IndexedEntry struct {
	Source         types.CatalogEntry `json:"entry"`
	NormalizedUnit string             `json:"normalizedUnit,omitempty"`
	SearchKeys     []string           `json:"searchKeys,omitempty"`
}

// IndexOptions tunes search-key derivation.
type IndexOptions struct {
	// Singularize derives the singular form of a single token. Defaults to
	// NaiveSingularize; swap in a real stemmer without touching the scorer.
	Singularize func(string) string
}

// keySet is an insertion-ordered string set, so catalog input order stays
// the tiebreak everywhere downstream.
type keySet struct {
	seen map[string]struct{}
	keys []string
}

func newKeySet() *keySet {
	return &keySet{seen: make(map[string]struct{})}
}

func (s *keySet) add(key string) {
	if key == "" {
		return
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.keys = append(s.keys, key)
}

// BuildIndex derives indexed entries from the raw catalog. Entries with a
// blank name, a non-finite or negative price, or no usable search keys are
// silently excluded, so the scorer never sees partial input. The index is
// rebuilt on every matching call; there is no cross-call cache.
func BuildIndex(catalog []types.CatalogEntry, opts IndexOptions) []IndexedEntry {
	singularize := opts.Singularize
	if singularize == nil {
		singularize = NaiveSingularize
	}

	index := make([]IndexedEntry, 0, len(catalog))
	for _, entry := range catalog {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}
		if math.IsNaN(entry.Price) || math.IsInf(entry.Price, 0) || entry.Price < 0 {
			continue
		}

		keys := newKeySet()
		keys.add(Normalize(entry.Name))
		for _, alias := range entry.Aliases {
			keys.add(Normalize(alias))
		}

		// Variants are derived from the base keys only, not from each
		// other, so the set stays small and deterministic.
		base := append([]string(nil), keys.keys...)
		for _, key := range base {
			keys.add(tokenSorted(key))
			keys.add(singularizeKey(key, singularize))
		}

		if len(keys.keys) == 0 {
			continue
		}

		index = append(index, IndexedEntry{
			Source:         entry,
			NormalizedUnit: NormalizeUnit(entry.Unit),
			SearchKeys:     keys.keys,
		})
	}
	return index
}

// singularizeKey applies the token singularizer to every token of a key.
func singularizeKey(key string, singularize func(string) string) string {
	fields := strings.Fields(key)
	for i, f := range fields {
		fields[i] = singularize(f)
	}
	return strings.Join(fields, " ")
}

// NaiveSingularize strips common English plural suffixes from a token. It is
// deliberately ASCII-only: tokens from non-Latin scripts pass through
// untouched, which keeps the variant a no-op rather than a corruption for
// those catalogs.
func NaiveSingularize(token string) string {
	switch {
	case len(token) > 3 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 4 && (strings.HasSuffix(token, "ches") || strings.HasSuffix(token, "shes")):
		return token[:len(token)-2]
	case len(token) > 3 && (strings.HasSuffix(token, "ses") ||
		strings.HasSuffix(token, "xes") || strings.HasSuffix(token, "zes")):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss"):
		return token[:len(token)-1]
	}
	return token
}
