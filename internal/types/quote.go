package types

// CatalogEntry represents one priced item or service template a user has
// saved for reuse. Identity is caller-supplied; the engine never mutates or
// persists entries.
type CatalogEntry struct {
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Unit    string   `json:"unit,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// LineItem represents one row of a quote being priced. Price and LineTotal
// are nil until a value has been entered or filled from the catalog.
type LineItem struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit"`
	Price     *float64 `json:"price,omitempty"`
	LineTotal *float64 `json:"lineTotal,omitempty"`
}
