package cuid2

import (
	"strings"
	"testing"
)

func TestEncodeTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Zero timestamp", 0, "000000"},
		{"One second", 1, "000001"},
		{"62 seconds", 62, "000010"},
		{"One minute", 60, "00000y"},
		{"One hour", 3600, "0000w4"},
		{"One day", 86400, "000MTY"},
		{"Unix epoch test", 1704067200, "1rK5iq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EncodeTimestamp(tt.seconds)
			if result != tt.expected {
				t.Errorf("EncodeTimestamp(%d) = %s, want %s", tt.seconds, result, tt.expected)
			}
		})
	}

	result := EncodeTimestamp(1234567890)
	for _, c := range result {
		if !strings.ContainsRune(base62Alphabet, c) {
			t.Errorf("Result contains non-base62 character: %c in %s", c, result)
		}
	}
}

func TestEncodeTimestampSortable(t *testing.T) {
	// Larger timestamps must sort later lexicographically.
	prev := EncodeTimestamp(0)
	for _, ts := range []int64{1, 62, 3600, 86400, 1704067200} {
		cur := EncodeTimestamp(ts)
		if cur <= prev {
			t.Errorf("EncodeTimestamp(%d) = %s not greater than previous %s", ts, cur, prev)
		}
		prev = cur
	}
}

func TestRandomBase62(t *testing.T) {
	length := 24
	id := randomBase62(length)

	if len(id) != length {
		t.Errorf("Generated ID length = %d, want %d", len(id), length)
	}

	for _, c := range id {
		if !strings.ContainsRune(base62Alphabet, c) {
			t.Errorf("ID contains non-base62 character: %c in %s", c, id)
		}
	}

	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := randomBase62(length)
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

func TestNew(t *testing.T) {
	id := New("req")

	if !strings.HasPrefix(id, "req_") {
		t.Errorf("New ID missing prefix: %s", id)
	}

	body := strings.TrimPrefix(id, "req_")
	if len(body) != 6+randomLength {
		t.Errorf("New ID body length = %d, want %d", len(body), 6+randomLength)
	}
	for _, c := range body {
		if !strings.ContainsRune(base62Alphabet, c) {
			t.Errorf("ID contains non-base62 character: %c in %s", c, id)
		}
	}
}
