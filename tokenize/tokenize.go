// Package tokenize turns arbitrary text into the normalized word sequence the
// graph is built from.
//
// Normalization pipeline:
//
//  1. lowercase the whole text;
//  2. every rune that is not 'a'..'z' or ' ' becomes ' ' (digits,
//     punctuation, newlines, tabs and non-ASCII letters are separators);
//  3. runs of spaces collapse to one space;
//  4. leading and trailing spaces are trimmed.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
package tokenize

import (
	"strings"
	"unicode"
)

// Normalize applies the full cleaning pipeline and returns the normalized text.
//
// Complexity: O(len(text)) time, one output buffer.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			// Separator: remember it, emit at most one and only between words.
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Tokens returns the normalized words of text in order. Empty input, or input
// with no ASCII letters, yields an empty (non-nil) slice.
func Tokens(text string) []string {
	norm := Normalize(text)
	if norm == "" {
		return []string{}
	}

	return strings.Split(norm, " ")
}

// Word normalizes a single query word: lowercase and trim, nothing else.
// Query words that carry punctuation are looked up verbatim and therefore miss,
// which is the documented behavior for user-supplied word pairs.
func Word(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
