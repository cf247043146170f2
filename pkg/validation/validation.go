package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLocationLength bounds the location query passed upstream.
const MaxLocationLength = 128

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// NormalizeLocation trims surrounding whitespace and collapses inner runs of
// whitespace to a single space.
func NormalizeLocation(location string) string {
	return strings.Join(strings.Fields(location), " ")
}

// IsValidLocation reports whether location is usable as an upstream query and a
// cache key: non-empty, at most MaxLocationLength runes, no control characters.
func IsValidLocation(location string) bool {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" || !utf8.ValidString(trimmed) {
		return false
	}
	if utf8.RuneCountInString(trimmed) > MaxLocationLength {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
