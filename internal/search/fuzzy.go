package search

import (
	"regexp"
	"strings"
)

// Minimum length (of the escaped term) before single-character typo
// tolerance is added. Shorter terms would become too permissive.
const fuzzyMinLengthForTypos = 5

// accentClasses maps base Latin letters to character classes covering
// their common accented variants. Search terms are normalized first, so
// only base letters occur on the left-hand side.
var accentClasses = map[rune]string{
	'a': "[aàáâãäå]",
	'e': "[eèéêë]",
	'i': "[iìíîï]",
	'o': "[oòóôõö]",
	'u': "[uùúûü]",
	'c': "[cç]",
	'n': "[nñ]",
	'y': "[yýÿ]",
}

// BuildFuzzyPattern turns a search term into a regex pattern tolerant of
// accent differences and, for longer terms, of a single inserted character
// between interior characters. The pattern is valid both for Go's regexp
// and for PostgreSQL's ~* operator.
func BuildFuzzyPattern(term string) string {
	escaped := EscapeRegex(NormalizeText(term))
	tokens := splitRegexTokens(escaped)
	withTypos := len(escaped) >= fuzzyMinLengthForTypos

	var b strings.Builder
	for i, tok := range tokens {
		// Gaps between interior characters only: never before the
		// second character or after the second-to-last one.
		if withTypos && i >= 2 && i <= len(tokens)-2 {
			b.WriteString(".?")
		}
		if r := []rune(tok); len(r) == 1 {
			if class, ok := accentClasses[r[0]]; ok {
				b.WriteString(class)
				continue
			}
		}
		b.WriteString(tok)
	}

	return b.String()
}

// BuildFuzzyRegex compiles the fuzzy pattern with case-insensitive
// matching. An empty term yields a regex that matches anywhere.
func BuildFuzzyRegex(term string) *regexp.Regexp {
	// The pattern is built from a QuoteMeta-escaped term, so it always
	// compiles.
	return regexp.MustCompile("(?i)" + BuildFuzzyPattern(term))
}

// splitRegexTokens splits an escaped pattern into atoms, keeping
// backslash escapes together with the character they escape.
func splitRegexTokens(escaped string) []string {
	var tokens []string
	runes := []rune(escaped)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			tokens = append(tokens, string(runes[i:i+2]))
			i++
			continue
		}
		tokens = append(tokens, string(runes[i]))
	}
	return tokens
}
