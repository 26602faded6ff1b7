package matching

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Match thresholds. Both paths share the same constants: a best match below
// AutoApplyThreshold never fills a price even if it would appear in the
// suggestion list.
const (
	// AutoApplyThreshold is the minimum score at which the single best
	// match is trusted enough to fill price and unit without review.
	AutoApplyThreshold = 0.62
	// SuggestionThreshold is the minimum score for ranked candidate lists
	// surfaced as suggestions.
	SuggestionThreshold = 0.50
	// DefaultMaxCandidates caps suggestion lists unless overridden.
	DefaultMaxCandidates = 3

	unitMatchBonus      = 0.08
	unitMismatchPenalty = 0.12
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// scoreName computes the 0-1 similarity of two already-normalized strings.
//
// Exact equality scores 1. Substring containment in either direction (with
// the shorter string at least 3 runes) scores 0.94 minus a length-gap
// penalty, which rewards near-identical phrases carrying superfluous words.
// Otherwise token-set overlap, query-token coverage and character-bigram
// Dice similarity are combined; full coverage floors the score at 0.9.
func scoreName(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	if query == candidate {
		return 1
	}

	qLen := utf8.RuneCountInString(query)
	cLen := utf8.RuneCountInString(candidate)
	shorter := qLen
	if cLen < shorter {
		shorter = cLen
	}
	if shorter >= 3 && (strings.Contains(query, candidate) || strings.Contains(candidate, query)) {
		gap := qLen - cLen
		if gap < 0 {
			gap = -gap
		}
		if gap > 10 {
			gap = 10
		}
		return clamp01(0.94 - 0.01*float64(gap))
	}

	qTokens := tokenSet(query)
	cTokens := tokenSet(candidate)
	common := 0
	for t := range qTokens {
		if _, ok := cTokens[t]; ok {
			common++
		}
	}
	larger := len(qTokens)
	if len(cTokens) > larger {
		larger = len(cTokens)
	}

	var overlap, coverage float64
	if larger > 0 {
		overlap = float64(common) / float64(larger)
	}
	if len(qTokens) > 0 {
		coverage = float64(common) / float64(len(qTokens))
	}
	dice := bigramDice(query, candidate)

	score := math.Max(dice*0.9, overlap*0.8+coverage*0.2)
	if len(qTokens) > 0 && common == len(qTokens) && score < 0.9 {
		score = 0.9
	}
	return clamp01(score)
}

// bigramDice computes the Dice coefficient over character bigrams:
// 2 x shared bigrams / total bigrams. Strings shorter than two runes have no
// bigrams and score 0.
func bigramDice(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) < 2 || len(br) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(ar)-1)
	for i := 0; i+1 < len(ar); i++ {
		counts[[2]rune{ar[i], ar[i+1]}]++
	}
	shared := 0
	for i := 0; i+1 < len(br); i++ {
		bg := [2]rune{br[i], br[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(ar)-1+len(br)-1)
}

// unitScoreDelta rewards canonical-unit agreement and penalizes
// disagreement. Absent units contribute nothing.
func unitScoreDelta(queryUnit, entryUnit string) float64 {
	if queryUnit == "" || entryUnit == "" {
		return 0
	}
	if queryUnit == entryUnit {
		return unitMatchBonus
	}
	return -unitMismatchPenalty
}

// scoreEntry evaluates every query form against every search key of the
// entry, takes the maximum, and applies the unit adjustment. Name scoring
// short-circuits once a perfect 1 is reached.
func scoreEntry(queryForms []string, queryUnit string, entry IndexedEntry) float64 {
	best := 0.0
scan:
	for _, key := range entry.SearchKeys {
		for _, q := range queryForms {
			if s := scoreName(q, key); s > best {
				best = s
				if best >= 1 {
					break scan
				}
			}
		}
	}
	if best == 0 {
		return 0
	}
	return clamp01(best + unitScoreDelta(queryUnit, entry.NormalizedUnit))
}
