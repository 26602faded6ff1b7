package pricelist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var currencySuffixRe = regexp.MustCompile(`(?i)\s*(EUR|USD|GBP|HRK|KN|CHF)\s*$`)

// ParsePrice parses a price cell into a float. Handles currency symbols and
// both decimal conventions: "12.99", "12,99", "1.299,00", "1,299.00".
func ParsePrice(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty price value")
	}

	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '€', '$', '£', '¥', '¢', ' ', ' ':
			return -1
		}
		return r
	}, cleaned)
	cleaned = currencySuffixRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in %q", value)
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	switch {
	case lastComma > lastDot:
		// European convention: dots group thousands, comma is decimal.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastDot > lastComma:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", value, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", value)
	}
	return price, nil
}
