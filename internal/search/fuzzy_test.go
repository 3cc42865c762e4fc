package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFuzzyPattern_TypoGaps(t *testing.T) {
	t.Parallel()

	// Gaps go between interior characters only.
	assert.Equal(t, "he.?l.?lo", BuildFuzzyPattern("hello"))

	re := BuildFuzzyRegex("hello")
	assert.True(t, re.MatchString("hello"))
	assert.True(t, re.MatchString("helXlo"))
	assert.True(t, re.MatchString("heXllo"))
	assert.False(t, re.MatchString("hXello"))
	assert.False(t, re.MatchString("hellXo"))
	assert.False(t, re.MatchString("helo"))
}

func TestBuildFuzzyPattern_ShortTermsGetNoGaps(t *testing.T) {
	t.Parallel()

	// Below the length threshold the pattern stays exact (modulo accent
	// classes), so short terms do not match unrelated text.
	assert.NotContains(t, BuildFuzzyPattern("dev"), ".?")
	assert.NotContains(t, BuildFuzzyPattern("abcd"), ".?")
	assert.Contains(t, BuildFuzzyPattern("abcde"), ".?")
}

func TestBuildFuzzyRegex_AccentSymmetry(t *testing.T) {
	t.Parallel()

	// Accented query finds plain text and vice versa.
	pairs := [][2]string{
		{"café", "cafe"},
		{"garçon", "garcon"},
		{"señor", "senor"},
		{"élève", "eleve"},
	}

	for _, p := range pairs {
		accented, plain := p[0], p[1]
		assert.True(t, BuildFuzzyRegex(accented).MatchString(plain),
			"query %q should match %q", accented, plain)
		assert.True(t, BuildFuzzyRegex(plain).MatchString(accented),
			"query %q should match %q", plain, accented)
	}
}

func TestBuildFuzzyRegex_CaseInsensitive(t *testing.T) {
	t.Parallel()

	re := BuildFuzzyRegex("Design")
	assert.True(t, re.MatchString("DESIGN"))
	assert.True(t, re.MatchString("design"))
}

func TestBuildFuzzyRegex_EscapedMetacharacters(t *testing.T) {
	t.Parallel()

	// Metacharacters in the term are literal in the pattern.
	re := BuildFuzzyRegex("c++")
	assert.True(t, re.MatchString("senior c++ developer"))
	assert.False(t, re.MatchString("senior c developer"))
}

func TestSplitRegexTokens(t *testing.T) {
	t.Parallel()

	// Backslash escapes stay glued to the character they escape.
	assert.Equal(t, []string{"a", `\+`, "b"}, splitRegexTokens(`a\+b`))
	assert.Equal(t, []string{"a", "b", "c"}, splitRegexTokens("abc"))
	assert.Empty(t, splitRegexTokens(""))
}
