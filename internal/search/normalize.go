package search

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText decomposes the string (NFD), strips combining diacritical
// marks and lowercases the result. Idempotent.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// EscapeRegex escapes the string so it matches itself literally inside a
// regular expression.
func EscapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}

// TokenizeSearchQuery splits a free-text query on whitespace runs, drops
// empty tokens and caps the result at maxTokens.
func TokenizeSearchQuery(query string, maxTokens int) []string {
	tokens := strings.Fields(query)
	if maxTokens >= 0 && len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	return tokens
}

// isAlphanumeric reports whether the token consists solely of Unicode
// letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
