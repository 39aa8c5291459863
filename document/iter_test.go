package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/parse"
)

func TestIterWordsAndSpaces(t *testing.T) {
	source := []rune("cat dog")
	doc := document.New(source, parse.PlainEnglish{})

	tokens := document.Tokens(doc.Tokens())

	var words []string
	for _, tok := range tokens.IterWords() {
		words = append(words, tok.Text(source))
	}
	assert.Equal(t, []string{"cat", "dog"}, words)

	var spaceCount int
	for range tokens.IterSpaces() {
		spaceCount++
	}
	assert.Equal(t, 1, spaceCount)
}

func TestFirstNonWhitespaceAndLastWord(t *testing.T) {
	source := []rune("  cat dog  ")
	tokens := document.Tokens(parse.PlainEnglish{}.Parse(source))

	first, ok := tokens.FirstNonWhitespace()
	assert.True(t, ok)
	assert.Equal(t, "cat", first.Text(source))

	last, ok := tokens.LastWord()
	assert.True(t, ok)
	assert.Equal(t, "dog", last.Text(source))
}

func TestTokensSpanCoversAllTokens(t *testing.T) {
	source := []rune("cat dog")
	tokens := document.Tokens(parse.PlainEnglish{}.Parse(source))

	s := tokens.Span()
	assert.Equal(t, 0, s.Start)
	assert.Equal(t, len(source), s.End)
}
