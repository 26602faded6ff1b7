package pricelist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseJSON(t *testing.T) {
	content := []byte(`[
		{"name":"Paint - Interior Latex","price":45,"unit":"liter","aliases":["wall paint"]},
		{"name":"Drywall sheet","price":8,"unit":"sqm"}
	]`)

	entries, err := ParseJSON(content)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Paint - Interior Latex", entries[0].Name)
	assert.Equal(t, 45.0, entries[0].Price)
	assert.Equal(t, []string{"wall paint"}, entries[0].Aliases)
}

func TestParseCSV(t *testing.T) {
	content := []byte("name;price;unit;aliases\n" +
		"Paint - Interior Latex;45,50;liter;wall paint|latex paint\n" +
		"Drywall sheet;8;sqm;\n" +
		";3;each;\n" + // blank name skipped
		"Bad price row;abc;each;\n")

	entries, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 45.5, entries[0].Price)
	assert.Equal(t, []string{"wall paint", "latex paint"}, entries[0].Aliases)
	assert.Equal(t, "sqm", entries[1].Unit)
}

func TestParseCSVCommaDelimiter(t *testing.T) {
	content := []byte("Item,Rate,UOM\nConcrete mix,12.99,kg\n")

	entries, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Concrete mix", entries[0].Name)
	assert.Equal(t, 12.99, entries[0].Price)
	assert.Equal(t, "kg", entries[0].Unit)
}

func TestParseCSVMissingColumns(t *testing.T) {
	_, err := ParseCSV([]byte("foo;bar\n1;2\n"))
	assert.Error(t, err)
}

func TestParseCSVWindows1250(t *testing.T) {
	// "Žbuka" with Ž as the Windows-1250 byte 0x8E.
	content := []byte("name;price\n")
	content = append(content, 0x8E)
	content = append(content, []byte("buka;5\n")...)

	entries, err := ParseCSV(content)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Žbuka", entries[0].Name)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Price", "Unit"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Drywall sheet", 8, "sqm"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Paint - Interior Latex", 45, "liter"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	entries, err := ParseXLSX(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Drywall sheet", entries[0].Name)
	assert.Equal(t, 8.0, entries[0].Price)
	assert.Equal(t, "liter", entries[1].Unit)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{"Plain", "12.99", 12.99, false},
		{"European decimal", "12,99", 12.99, false},
		{"European thousands", "1.299,00", 1299, false},
		{"US thousands", "1,299.00", 1299, false},
		{"Currency symbol", "€45.50", 45.5, false},
		{"Currency suffix", "45,50 EUR", 45.5, false},
		{"Integer", "8", 8, false},
		{"Empty", "", 0, true},
		{"Garbage", "abc", 0, true},
		{"Negative", "-4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
