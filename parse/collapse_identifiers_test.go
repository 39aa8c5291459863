package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/parse"
)

func TestCollapseIdentifiersCoalescesKnownIdentifier(t *testing.T) {
	source := []rune("call foo_bar now")
	p := parse.CollapseIdentifiers{Inner: parse.PlainEnglish{}, Dictionary: wordSetDict{"foo_bar": true}}

	tokens := p.Parse(source)

	var found bool
	for _, tok := range tokens {
		if tok.IsWord() && tok.Text(source) == "foo_bar" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCollapseIdentifiersLeavesUnknownIdentifierAlone(t *testing.T) {
	source := []rune("call foo_bar now")
	p := parse.CollapseIdentifiers{Inner: parse.PlainEnglish{}, Dictionary: wordSetDict{}}

	tokens := p.Parse(source)
	require.NotEmpty(t, tokens)

	for _, tok := range tokens {
		assert.NotEqual(t, "foo_bar", tok.Text(source))
	}
}
