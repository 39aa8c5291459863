package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/token"
)

func TestExpandMarkedWordSimpleSuffix(t *testing.T) {
	cond, err := dict.ParseCondition(".", 1)
	require.NoError(t, err)

	attrs := dict.AttributeList{
		'S': dict.Expansion{
			Suffix: true,
			Replacements: []dict.AffixReplacement{
				{Add: []rune("s"), Condition: cond},
			},
			Adds: token.WordMetadata{Noun: &token.NounMetadata{IsPlural: token.BoolPtr(true)}},
		},
	}

	dest := make(map[string]token.WordMetadata)
	dict.ExpandMarkedWord(dict.MarkedWord{Letters: []rune("cat"), Attributes: []rune("S")}, token.WordMetadata{}, attrs, dest)

	assert.Contains(t, dest, "cat")
	assert.Contains(t, dest, "cats")
	assert.True(t, dest["cats"].IsPlural())
}

func TestExpandMarkedWordCrossProduct(t *testing.T) {
	condAny, err := dict.ParseCondition(".", 1)
	require.NoError(t, err)

	attrs := dict.AttributeList{
		'P': dict.Expansion{
			Suffix:       false,
			CrossProduct: true,
			Replacements: []dict.AffixReplacement{
				{Add: []rune("re"), Condition: condAny},
			},
		},
		'S': dict.Expansion{
			Suffix: true,
			Replacements: []dict.AffixReplacement{
				{Add: []rune("s"), Condition: condAny},
			},
		},
	}

	dest := make(map[string]token.WordMetadata)
	dict.ExpandMarkedWord(dict.MarkedWord{Letters: []rune("do"), Attributes: []rune("PS")}, token.WordMetadata{}, attrs, dest)

	assert.Contains(t, dest, "do")
	assert.Contains(t, dest, "redo")
	assert.Contains(t, dest, "dos")
}

func TestBuildLexiconDeduplicatesRepeatedWord(t *testing.T) {
	words := []dict.MarkedWord{
		{Letters: []rune("run"), Attributes: nil},
		{Letters: []rune("run"), Attributes: nil},
	}
	lexicon := dict.BuildLexicon(words, dict.AttributeList{})
	assert.Len(t, lexicon, 1)
	assert.Contains(t, lexicon, "run")
}
