// Package matching implements the catalog price-matching engine: fuzzy
// normalization of line-item names, unit-aware similarity scoring against a
// user-maintained price catalog, and batch price filling for quote rows.
//
// Every operation is a pure function of its inputs with no shared state, so
// the package is safe to call from any number of concurrent requests.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/fieldquote/pricing-service/internal/types"
)

// MatchCandidate pairs an indexed catalog entry with its similarity score.
type MatchCandidate struct {
	Entry IndexedEntry `json:"entry"`
	Score float64      `json:"score"`
}

// CandidateOptions bounds ranked candidate lists. Zero values fall back to
// DefaultMaxCandidates and SuggestionThreshold.
type CandidateOptions struct {
	MaxResults int     `json:"maxResults,omitempty"`
	MinScore   float64 `json:"minScore,omitempty"`
}

// ApplyOptions controls the batch price fill.
type ApplyOptions struct {
	// OnlyMissingPrice skips items that already carry a positive price.
	OnlyMissingPrice bool `json:"onlyMissingPrice"`
	// FillEmptyUnit copies the matched entry's unit onto items whose unit
	// is blank.
	FillEmptyUnit bool `json:"fillEmptyUnit"`
}

// DefaultApplyOptions returns the defaults used by the auto-fill flow.
func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{OnlyMissingPrice: true, FillEmptyUnit: true}
}

// ApplyResult is the outcome of a batch price fill.
type ApplyResult struct {
	Items        []types.LineItem `json:"items"`
	MatchedCount int              `json:"matchedCount"`
}

// queryForms returns the normalized query plus its token-sorted variant.
// A blank name yields nil, which every caller treats as "no match possible".
func queryForms(name string) []string {
	q := Normalize(name)
	if q == "" {
		return nil
	}
	forms := []string{q}
	if ts := tokenSorted(q); ts != q {
		forms = append(forms, ts)
	}
	return forms
}

// FindBestMatch scores every catalog entry against the query and returns the
// best one if it clears AutoApplyThreshold, else nil. Ties go to the entry
// that appears first in catalog order.
func FindBestMatch(name, unit string, catalog []types.CatalogEntry) *MatchCandidate {
	return bestAgainstIndex(queryForms(name), NormalizeUnit(unit), BuildIndex(catalog, IndexOptions{}))
}

func bestAgainstIndex(forms []string, unit string, index []IndexedEntry) *MatchCandidate {
	if len(forms) == 0 {
		matchAttempts.WithLabelValues(outcomeBlankQuery).Inc()
		return nil
	}

	var best *MatchCandidate
	for i := range index {
		score := scoreEntry(forms, unit, index[i])
		if best == nil || score > best.Score {
			best = &MatchCandidate{Entry: index[i], Score: score}
		}
	}
	if best == nil || best.Score < AutoApplyThreshold {
		matchAttempts.WithLabelValues(outcomeBelowThreshold).Inc()
		return nil
	}

	matchAttempts.WithLabelValues(outcomeMatched).Inc()
	bestMatchScore.Observe(best.Score)
	return best
}

// Candidates returns up to MaxResults entries scoring at least MinScore,
// sorted by descending score with catalog order as the stable tiebreak.
// Blank queries and empty or entirely invalid catalogs yield an empty list,
// never an error.
func Candidates(name, unit string, catalog []types.CatalogEntry, opts CandidateOptions) []MatchCandidate {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxCandidates
	}
	if opts.MinScore <= 0 {
		opts.MinScore = SuggestionThreshold
	}

	forms := queryForms(name)
	if len(forms) == 0 {
		return nil
	}

	index := BuildIndex(catalog, IndexOptions{})
	queryUnit := NormalizeUnit(unit)

	candidates := make([]MatchCandidate, 0, len(index))
	for i := range index {
		if score := scoreEntry(forms, queryUnit, index[i]); score >= opts.MinScore {
			candidates = append(candidates, MatchCandidate{Entry: index[i], Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > opts.MaxResults {
		candidates = candidates[:opts.MaxResults]
	}
	return candidates
}

// ApplyToLineItems runs FindBestMatch for every eligible line item and fills
// price, unit and line total from the matched catalog entry. Skipped and
// unmatched items pass through untouched. The operation is idempotent under
// default options: every previously filled item carries a positive price and
// is skipped on the next run.
func ApplyToLineItems(items []types.LineItem, catalog []types.CatalogEntry, opts ApplyOptions) ApplyResult {
	result := ApplyResult{Items: items}
	if len(items) == 0 {
		return result
	}
	batchItems.Observe(float64(len(items)))

	index := BuildIndex(catalog, IndexOptions{})
	if len(index) == 0 {
		return result
	}

	filled := make([]types.LineItem, len(items))
	copy(filled, items)

	for i, item := range items {
		if opts.OnlyMissingPrice && hasPositivePrice(item) {
			continue
		}
		forms := queryForms(item.Name)
		if len(forms) == 0 {
			continue
		}
		best := bestAgainstIndex(forms, NormalizeUnit(item.Unit), index)
		if best == nil {
			continue
		}

		price := best.Entry.Source.Price
		item.Price = &price
		if opts.FillEmptyUnit && strings.TrimSpace(item.Unit) == "" {
			item.Unit = best.Entry.Source.Unit
		}
		quantity := item.Quantity
		if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			quantity = 0
		}
		total := quantity * price
		item.LineTotal = &total

		filled[i] = item
		result.MatchedCount++
	}

	if result.MatchedCount == 0 {
		// Keep the cheap path: nothing changed, hand back the input.
		return result
	}
	batchMatched.Add(float64(result.MatchedCount))
	result.Items = filled
	return result
}

func hasPositivePrice(item types.LineItem) bool {
	return item.Price != nil &&
		!math.IsNaN(*item.Price) && !math.IsInf(*item.Price, 0) &&
		*item.Price > 0
}
