package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/token"
)

func sampleDictionary() *dict.Dictionary {
	return dict.New(map[string]token.WordMetadata{
		"cat":     {Common: true},
		"cats":    {Common: true},
		"cot":     {},
		"cart":    {},
		"dog":     {Common: true},
		"catalog": {},
	})
}

func TestLinearAndSortedBackendsAgree(t *testing.T) {
	d := sampleDictionary()
	linear := dict.NewLinearDictionary(d)
	sorted := dict.NewSortedDictionary(d)

	for _, word := range []string{"cet", "catt", "dawg", "xyzzy"} {
		linearMatches := linear.FuzzyMatch(word, 2, 10)
		sortedMatches := sorted.FuzzyMatch(word, 2, 10)

		linearWords := wordSet(linearMatches)
		sortedWords := wordSet(sortedMatches)
		assert.Equal(t, linearWords, sortedWords, "backends disagree for %q", word)
	}
}

func wordSet(matches []dict.Match) map[string]bool {
	set := make(map[string]bool, len(matches))
	for _, m := range matches {
		set[m.Word] = true
	}
	return set
}

func TestFuzzyMatchRanksAscendingDistance(t *testing.T) {
	d := sampleDictionary()
	linear := dict.NewLinearDictionary(d)

	matches := linear.FuzzyMatch("cet", 2, 10)
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].Distance, matches[i].Distance)
	}
}

func TestFuzzyMatchRespectsMaxResults(t *testing.T) {
	d := sampleDictionary()
	linear := dict.NewLinearDictionary(d)

	matches := linear.FuzzyMatch("cat", 3, 2)
	assert.LessOrEqual(t, len(matches), 2)
}

func TestFuzzyMatchExcludesCandidatesBeyondMaxDistance(t *testing.T) {
	d := sampleDictionary()
	linear := dict.NewLinearDictionary(d)

	matches := linear.FuzzyMatch("cat", 1, 10)
	for _, m := range matches {
		assert.LessOrEqual(t, m.Distance, 1)
	}
}
