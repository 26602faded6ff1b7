// Package pricelist loads user price catalogs from exported files so the
// CLI and the service can be driven from real data. It is caller-side input
// plumbing only: nothing here writes anything back.
package pricelist

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/fieldquote/pricing-service/internal/types"
)

// Load reads a price catalog from a local file or an http(s) URL,
// dispatching on the extension. Supported formats: .json, .csv, .xlsx.
func Load(path string) ([]types.CatalogEntry, error) {
	var content []byte
	var err error
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		content, err = Fetch(path, DefaultFetchConfig())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	// Strip any query string so URL extensions resolve.
	name := path
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return ParseJSON(content)
	case ".csv":
		return ParseCSV(content)
	case ".xlsx":
		return ParseXLSX(content)
	default:
		return nil, fmt.Errorf("unsupported price list format: %q", ext)
	}
}

// LoadLineItems reads quote line items from a JSON file.
func LoadLineItems(path string) ([]types.LineItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read line items: %w", err)
	}
	var items []types.LineItem
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("parse line items: %w", err)
	}
	return items, nil
}

// ParseJSON decodes a JSON array of catalog entries.
func ParseJSON(content []byte) ([]types.CatalogEntry, error) {
	var entries []types.CatalogEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse price list JSON: %w", err)
	}
	return entries, nil
}

// ParseCSV decodes a delimited price list. Encoding and delimiter are
// detected; rows that cannot be turned into an entry are logged and skipped
// rather than failing the whole file.
func ParseCSV(content []byte) ([]types.CatalogEntry, error) {
	decoded := decodeToUTF8(content)

	reader := csv.NewReader(strings.NewReader(decoded))
	reader.Comma = detectDelimiter(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse price list CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := mapColumns(rows[0])
	if columns.name < 0 || columns.price < 0 {
		return nil, fmt.Errorf("price list CSV is missing a name or price column: %v", rows[0])
	}

	return rowsToEntries(rows[1:], columns), nil
}

// ParseXLSX decodes the first sheet of an XLSX price list.
func ParseXLSX(content []byte) ([]types.CatalogEntry, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open price list XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("price list XLSX has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := mapColumns(rows[0])
	if columns.name < 0 || columns.price < 0 {
		return nil, fmt.Errorf("price list XLSX is missing a name or price column: %v", rows[0])
	}

	return rowsToEntries(rows[1:], columns), nil
}

// columnIndices holds the resolved header positions; -1 means absent.
type columnIndices struct {
	name    int
	price   int
	unit    int
	aliases int
}

// headerNames maps accepted header spellings to logical columns.
var headerNames = map[string]string{
	"name": "name", "item": "name", "description": "name", "service": "name",
	"price": "price", "unitprice": "price", "rate": "price", "amount": "price",
	"unit": "unit", "uom": "unit", "measure": "unit",
	"aliases": "aliases", "alias": "aliases", "keywords": "aliases", "synonyms": "aliases",
}

func mapColumns(header []string) columnIndices {
	columns := columnIndices{name: -1, price: -1, unit: -1, aliases: -1}
	for i, h := range header {
		key := strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(h)), ""))
		switch headerNames[key] {
		case "name":
			if columns.name < 0 {
				columns.name = i
			}
		case "price":
			if columns.price < 0 {
				columns.price = i
			}
		case "unit":
			if columns.unit < 0 {
				columns.unit = i
			}
		case "aliases":
			if columns.aliases < 0 {
				columns.aliases = i
			}
		}
	}
	return columns
}

func rowsToEntries(rows [][]string, columns columnIndices) []types.CatalogEntry {
	entries := make([]types.CatalogEntry, 0, len(rows))
	for i, row := range rows {
		name := cell(row, columns.name)
		if strings.TrimSpace(name) == "" {
			continue
		}
		price, err := ParsePrice(cell(row, columns.price))
		if err != nil {
			log.Warn().Int("row", i+2).Str("name", name).Err(err).Msg("Skipping price list row")
			continue
		}
		entry := types.CatalogEntry{
			Name:  strings.TrimSpace(name),
			Price: price,
			Unit:  strings.TrimSpace(cell(row, columns.unit)),
		}
		if raw := cell(row, columns.aliases); raw != "" {
			for _, alias := range strings.Split(raw, "|") {
				if alias = strings.TrimSpace(alias); alias != "" {
					entry.Aliases = append(entry.Aliases, alias)
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// decodeToUTF8 returns the content as UTF-8 text. Files exported from older
// spreadsheet tools commonly arrive as Windows-1250; anything that is not
// already valid UTF-8 is decoded from that.
func decodeToUTF8(content []byte) string {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(content) {
		return string(content)
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(decoded)
}

// detectDelimiter picks the delimiter whose count is highest and consistent
// across the first lines of the file.
func detectDelimiter(content string) rune {
	lines := strings.Split(content, "\n")
	sample := make([]string, 0, 5)
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sample = append(sample, trimmed)
			if len(sample) >= 5 {
				break
			}
		}
	}
	if len(sample) == 0 {
		return ','
	}

	best := ','
	bestScore := 0.0
	for _, delim := range []rune{',', ';', '\t'} {
		sum := 0
		counts := make([]int, 0, len(sample))
		for _, line := range sample {
			c := strings.Count(line, string(delim))
			counts = append(counts, c)
			sum += c
		}
		avg := float64(sum) / float64(len(counts))
		if avg == 0 {
			continue
		}
		variance := 0.0
		for _, c := range counts {
			diff := float64(c) - avg
			variance += diff * diff
		}
		variance /= float64(len(counts))
		if score := avg / (1.0 + variance); score > bestScore {
			bestScore = score
			best = delim
		}
	}
	return best
}
