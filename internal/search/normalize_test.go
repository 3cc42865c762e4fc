package search

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"ÉLÈVE", "eleve"},
		{"garçon", "garcon"},
		{"naïve", "naive"},
		{"señor", "senor"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeText(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Café au Lait", "Développeur Sénior", "hello", "crème brûlée"}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}

func TestEscapeRegex_MatchesItselfLiterally(t *testing.T) {
	t.Parallel()

	inputs := []string{"c++ (junior)", "a.b*c?", "[salary] $3000", "plain"}
	for _, in := range inputs {
		re, err := regexp.Compile("^" + EscapeRegex(in) + "$")
		assert.NoError(t, err, "input %q", in)
		assert.True(t, re.MatchString(in), "escaped %q should match itself", in)
	}

	// The escaped dot must not act as a wildcard.
	re := regexp.MustCompile("^" + EscapeRegex("a.b") + "$")
	assert.False(t, re.MatchString("axb"))
}

func TestTokenizeSearchQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"foo", "bar"}, TokenizeSearchQuery("  foo   bar ", 8))
	assert.Empty(t, TokenizeSearchQuery("   ", 8))
	assert.Empty(t, TokenizeSearchQuery("", 8))

	// The cap keeps the first tokens and drops the rest.
	got := TokenizeSearchQuery("a b c d e", 3)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestIsAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, isAlphanumeric("dev2024"))
	assert.True(t, isAlphanumeric("café"))
	assert.False(t, isAlphanumeric(""))
	assert.False(t, isAlphanumeric("two words"))
	assert.False(t, isAlphanumeric("c++"))
}
