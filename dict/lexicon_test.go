package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/token"
)

func TestNormalizeFoldsSmartQuotesAndCase(t *testing.T) {
	assert.Equal(t, "don't", dict.Normalize("Don’t"))
	assert.Equal(t, "don't", dict.Normalize("DON'T"))
}

func TestDictionaryContainsWord(t *testing.T) {
	d := dict.New(map[string]token.WordMetadata{
		"cat":  {Common: true},
		"cats": {Noun: &token.NounMetadata{IsPlural: token.BoolPtr(true)}},
	})

	assert.True(t, d.ContainsWord("CAT"))
	assert.True(t, d.ContainsWord("cats"))
	assert.False(t, d.ContainsWord("dog"))
	assert.Equal(t, 2, d.Len())
}

func TestDictionaryWordsByLengthSorted(t *testing.T) {
	d := dict.New(map[string]token.WordMetadata{
		"a":   {},
		"bb":  {},
		"ccc": {},
	})

	words := d.WordsByLength()
	assert.Equal(t, []string{"a", "bb", "ccc"}, words)
}

func TestDictionarySortedKeysLexicographic(t *testing.T) {
	d := dict.New(map[string]token.WordMetadata{
		"zebra": {},
		"apple": {},
		"mango": {},
	})

	assert.Equal(t, []string{"apple", "mango", "zebra"}, d.SortedKeys())
}
