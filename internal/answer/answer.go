package answer

import (
	"strings"
	"unicode"
)

// Normalize prepares an answer for comparison.
//
// Normalization rules:
// - Leading and trailing whitespace is trimmed
// - All characters are lower-cased
// - Every run of whitespace (spaces, tabs, newlines) becomes a single space
//
// Whitespace is unicode.IsSpace plus the ASCII separators U+001C..U+001F.
func Normalize(text string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(text), isSpace), " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// IsCorrect reports whether submitted matches canonical after normalization.
// The comparison is purely lexical: "where a=1" and "where 1=a" differ.
func IsCorrect(submitted, canonical string) bool {
	return Normalize(submitted) == Normalize(canonical)
}
