package matching

import (
	"math"
	"reflect"
	"testing"

	"github.com/fieldquote/pricing-service/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestFindBestMatchSelfMatch(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "Paint - Interior Latex", Price: 45, Unit: "liter"},
		{Name: "Drywall sheet", Price: 8, Unit: "sqm"},
		{Name: "Electrician hourly rate", Price: 60, Unit: "hr"},
	}

	for _, entry := range catalog {
		match := FindBestMatch(entry.Name, entry.Unit, catalog)
		if match == nil {
			t.Fatalf("no match for %q", entry.Name)
		}
		if match.Entry.Source.Name != entry.Name {
			t.Errorf("matched %q, want %q", match.Entry.Source.Name, entry.Name)
		}
		if match.Score != 1 {
			t.Errorf("self-match score = %v, want 1", match.Score)
		}
	}
}

func TestFindBestMatchAliasWithUnitBonus(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "Paint - Interior Latex", Price: 45, Unit: "liter", Aliases: []string{"wall paint"}},
	}

	match := FindBestMatch("wall paint", "liters", catalog)
	if match == nil {
		t.Fatal("expected a match via alias")
	}
	if match.Score < AutoApplyThreshold {
		t.Errorf("score = %v, want >= %v", match.Score, AutoApplyThreshold)
	}
	if match.Entry.NormalizedUnit != "liter" {
		t.Errorf("NormalizedUnit = %q, want liter", match.Entry.NormalizedUnit)
	}
}

func TestFindBestMatchUnitMismatchRanksLower(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "drywall sheet", Unit: "sqm", Price: 10},
		{Name: "drywall sheet", Unit: "each", Price: 12},
	}

	match := FindBestMatch("drywall sheet", "sqm", catalog)
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Entry.Source.Price != 10 {
		t.Errorf("matched the %v entry, want the sqm one", match.Entry.Source.Price)
	}

	ranked := Candidates("drywall sheet", "sqm", catalog, CandidateOptions{})
	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("unit mismatch did not lower the score: %v vs %v", ranked[0].Score, ranked[1].Score)
	}
}

func TestFindBestMatchNoLexicalOverlap(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "Paint - Interior Latex", Price: 45, Unit: "liter"},
		{Name: "Drywall sheet", Price: 8, Unit: "sqm"},
	}

	if match := FindBestMatch("xyz nonexistent widget", "", catalog); match != nil {
		t.Errorf("unexpected match: %+v", match)
	}
	if cands := Candidates("xyz nonexistent widget", "", catalog, CandidateOptions{}); len(cands) != 0 {
		t.Errorf("unexpected candidates: %+v", cands)
	}
}

func TestFindBestMatchBlankQuery(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "Paint", Price: 1}}
	if match := FindBestMatch("   ", "", catalog); match != nil {
		t.Errorf("blank query matched: %+v", match)
	}
}

func TestFindBestMatchTieGoesToFirstEntry(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "concrete mix", Price: 5},
		{Name: "concrete mix", Price: 7},
	}
	match := FindBestMatch("concrete mix", "", catalog)
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Entry.Source.Price != 5 {
		t.Errorf("tie broken to price %v, want the first catalog entry", match.Entry.Source.Price)
	}
}

func TestCandidatesBounds(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "wall paint white", Price: 30},
		{Name: "wall paint blue", Price: 31},
		{Name: "wall paint green", Price: 32},
		{Name: "wall paint matte", Price: 33},
		{Name: "floor varnish", Price: 20},
	}

	cands := Candidates("wall paint", "", catalog, CandidateOptions{MaxResults: 3, MinScore: 0.5})
	if len(cands) > 3 {
		t.Fatalf("got %d candidates, want at most 3", len(cands))
	}
	for i, c := range cands {
		if c.Score < 0.5 {
			t.Errorf("candidate %d score %v below minScore", i, c.Score)
		}
		if i > 0 && cands[i-1].Score < c.Score {
			t.Errorf("candidates not sorted: %v before %v", cands[i-1].Score, c.Score)
		}
	}
}

func TestCandidatesDefaultsApplied(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "wall paint a", Price: 1},
		{Name: "wall paint b", Price: 2},
		{Name: "wall paint c", Price: 3},
		{Name: "wall paint d", Price: 4},
	}
	cands := Candidates("wall paint", "", catalog, CandidateOptions{})
	if len(cands) != DefaultMaxCandidates {
		t.Errorf("got %d candidates, want default %d", len(cands), DefaultMaxCandidates)
	}
}

func TestCandidatesEmptyCatalog(t *testing.T) {
	if cands := Candidates("paint", "", nil, CandidateOptions{}); len(cands) != 0 {
		t.Errorf("empty catalog produced candidates: %+v", cands)
	}
}

func TestApplyToLineItemsFillsPriceUnitAndTotal(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "drywall sheet", Price: 8, Unit: "sqm"}}
	items := []types.LineItem{
		{Name: "Drywall sheets", Quantity: 10, Unit: ""},
	}

	result := ApplyToLineItems(items, catalog, DefaultApplyOptions())
	if result.MatchedCount != 1 {
		t.Fatalf("MatchedCount = %d, want 1", result.MatchedCount)
	}
	got := result.Items[0]
	if got.Price == nil || *got.Price != 8 {
		t.Errorf("price = %v, want 8", got.Price)
	}
	if got.Unit != "sqm" {
		t.Errorf("unit = %q, want sqm", got.Unit)
	}
	if got.LineTotal == nil || *got.LineTotal != 80 {
		t.Errorf("lineTotal = %v, want 80", got.LineTotal)
	}
	// Input slice must stay untouched.
	if items[0].Price != nil {
		t.Errorf("input line item was mutated: %+v", items[0])
	}
}

func TestApplyToLineItemsSkipsPricedItems(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "drywall sheet", Price: 8, Unit: "sqm"}}
	items := []types.LineItem{
		{Name: "Drywall sheets", Quantity: 10, Unit: "each", Price: floatPtr(12), LineTotal: floatPtr(120)},
	}

	result := ApplyToLineItems(items, catalog, DefaultApplyOptions())
	if result.MatchedCount != 0 {
		t.Errorf("MatchedCount = %d, want 0", result.MatchedCount)
	}
	if *result.Items[0].Price != 12 {
		t.Errorf("existing price overwritten: %v", *result.Items[0].Price)
	}
}

func TestApplyToLineItemsOverwritesWhenRequested(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "drywall sheet", Price: 8, Unit: "sqm"}}
	items := []types.LineItem{
		{Name: "Drywall sheets", Quantity: 2, Unit: "each", Price: floatPtr(12)},
	}

	result := ApplyToLineItems(items, catalog, ApplyOptions{OnlyMissingPrice: false, FillEmptyUnit: true})
	if result.MatchedCount != 1 {
		t.Fatalf("MatchedCount = %d, want 1", result.MatchedCount)
	}
	got := result.Items[0]
	if *got.Price != 8 {
		t.Errorf("price = %v, want 8", *got.Price)
	}
	if got.Unit != "each" {
		t.Errorf("non-blank unit was overwritten: %q", got.Unit)
	}
}

func TestApplyToLineItemsIdempotent(t *testing.T) {
	catalog := []types.CatalogEntry{
		{Name: "drywall sheet", Price: 8, Unit: "sqm"},
		{Name: "Paint - Interior Latex", Price: 45, Unit: "liter", Aliases: []string{"wall paint"}},
	}
	items := []types.LineItem{
		{Name: "Drywall sheets", Quantity: 10},
		{Name: "wall paint", Quantity: 3, Unit: "liters"},
		{Name: "mystery widget xq", Quantity: 1},
	}

	once := ApplyToLineItems(items, catalog, DefaultApplyOptions())
	twice := ApplyToLineItems(once.Items, catalog, DefaultApplyOptions())

	if twice.MatchedCount != 0 {
		t.Errorf("second apply changed %d rows, want 0", twice.MatchedCount)
	}
	if !reflect.DeepEqual(once.Items, twice.Items) {
		t.Errorf("second apply altered items:\n%+v\n%+v", once.Items, twice.Items)
	}
}

func TestApplyToLineItemsNonFiniteQuantity(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "drywall sheet", Price: 8, Unit: "sqm"}}
	items := []types.LineItem{{Name: "drywall sheet", Quantity: math.NaN()}}

	result := ApplyToLineItems(items, catalog, DefaultApplyOptions())
	if result.MatchedCount != 1 {
		t.Fatalf("MatchedCount = %d, want 1", result.MatchedCount)
	}
	if got := result.Items[0].LineTotal; got == nil || *got != 0 {
		t.Errorf("lineTotal = %v, want 0 for non-finite quantity", got)
	}
}

func TestApplyToLineItemsIdentityResults(t *testing.T) {
	items := []types.LineItem{{Name: "Drywall sheets", Quantity: 10}}

	empty := ApplyToLineItems(items, nil, DefaultApplyOptions())
	if empty.MatchedCount != 0 || len(empty.Items) != 1 {
		t.Errorf("empty catalog result = %+v", empty)
	}

	invalid := ApplyToLineItems(items, []types.CatalogEntry{{Name: "  ", Price: 1}}, DefaultApplyOptions())
	if invalid.MatchedCount != 0 {
		t.Errorf("invalid catalog matched rows: %+v", invalid)
	}

	none := ApplyToLineItems(nil, []types.CatalogEntry{{Name: "paint", Price: 1}}, DefaultApplyOptions())
	if none.MatchedCount != 0 || len(none.Items) != 0 {
		t.Errorf("empty items result = %+v", none)
	}
}

func TestApplyToLineItemsSkipsBlankNames(t *testing.T) {
	catalog := []types.CatalogEntry{{Name: "paint", Price: 1}}
	items := []types.LineItem{{Name: "   ", Quantity: 2}}

	result := ApplyToLineItems(items, catalog, DefaultApplyOptions())
	if result.MatchedCount != 0 {
		t.Errorf("blank-name item matched: %+v", result)
	}
}
