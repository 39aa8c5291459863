package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/parse"
	"github.com/harperlint/harper/token"
)

func TestMarkdownLexesParagraphText(t *testing.T) {
	source := []rune("Hello world.\n")
	tokens := parse.Markdown{}.Parse(source)
	require.NotEmpty(t, tokens)

	var words []string
	for _, tok := range tokens {
		if tok.IsWord() {
			words = append(words, tok.Text(source))
		}
	}
	assert.Equal(t, []string{"Hello", "world"}, words)
}

func TestMarkdownEmitsUnlintableForCodeSpan(t *testing.T) {
	source := []rune("Run `go build` now.\n")
	tokens := parse.Markdown{}.Parse(source)

	var sawUnlintable bool
	for _, tok := range tokens {
		if tok.Tag() == token.KindUnlintable {
			sawUnlintable = true
			assert.Equal(t, "go build", tok.Text(source))
		}
	}
	assert.True(t, sawUnlintable)
}

func TestMarkdownEmitsUnlintableForFencedCodeBlock(t *testing.T) {
	source := []rune("Text.\n\n```\ncode here\n```\n")
	tokens := parse.Markdown{}.Parse(source)

	var sawUnlintable bool
	for _, tok := range tokens {
		if tok.Tag() == token.KindUnlintable {
			sawUnlintable = true
		}
	}
	assert.True(t, sawUnlintable)
}
