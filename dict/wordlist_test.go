package dict_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/internal/dicterr"
	"github.com/harperlint/harper/dict"
)

func TestParseWordListBasic(t *testing.T) {
	input := "3\ncat/S\ndog\nrun/SD\n"
	h := &dicterr.Handler{}

	words, err := dict.ParseWordList(strings.NewReader(input), h)
	require.NoError(t, err)
	require.NoError(t, h.Err())
	require.Len(t, words, 3)

	assert.Equal(t, "cat", string(words[0].Letters))
	assert.Equal(t, []rune("S"), words[0].Attributes)
	assert.Equal(t, "dog", string(words[1].Letters))
	assert.Empty(t, words[1].Attributes)
}

func TestParseWordListBadCount(t *testing.T) {
	h := &dicterr.Handler{}
	_, err := dict.ParseWordList(strings.NewReader("not-a-number\ncat\n"), h)
	require.Error(t, err)

	var derr *dicterr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dicterr.BadCount, derr.Kind)
}

func TestParseAffixTableBasic(t *testing.T) {
	input := `{
		"affixes": {
			"S": {
				"suffix": true,
				"cross_product": false,
				"replacements": [
					{"remove": "", "add": "s", "condition": "."}
				],
				"adds": {"noun": {"is_plural": true}}
			}
		}
	}`

	h := &dicterr.Handler{}
	attrs, err := dict.ParseAffixTable(strings.NewReader(input), h)
	require.NoError(t, err)
	require.Contains(t, attrs, 'S')

	exp := attrs['S']
	assert.True(t, exp.Suffix)
	assert.False(t, exp.CrossProduct)
	require.Len(t, exp.Replacements, 1)
	assert.True(t, exp.Adds.IsPlural())
}

func TestParseAffixTableMultiCharFlagRejected(t *testing.T) {
	input := `{"affixes": {"AB": {"suffix": true}}}`
	h := &dicterr.Handler{}
	_, err := dict.ParseAffixTable(strings.NewReader(input), h)
	require.Error(t, err)
}

func TestLoadFromFS(t *testing.T) {
	wordList := "2\ncat/S\ndog\n"
	affixTable := `{
		"affixes": {
			"S": {
				"suffix": true,
				"replacements": [{"remove": "", "add": "s", "condition": "."}]
			}
		}
	}`

	fsys := fstest.MapFS{
		"dicts/en/words.txt": &fstest.MapFile{Data: []byte(wordList)},
		"dicts/en/affix.json": &fstest.MapFile{Data: []byte(affixTable)},
	}

	d, err := dict.LoadFromFS(fsys, "dicts/**/words.txt", "dicts/**/affix.json")
	require.NoError(t, err)

	assert.True(t, d.ContainsWord("cat"))
	assert.True(t, d.ContainsWord("cats"))
	assert.True(t, d.ContainsWord("dog"))
}
