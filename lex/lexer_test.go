package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/lex"
	"github.com/harperlint/harper/token"
)

func tags(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Tag()
	}
	return kinds
}

func TestLexSimpleSentence(t *testing.T) {
	chars := []rune("Hello, world!")
	tokens := lex.LexToEnd(chars)

	require.Len(t, tokens, 5)
	assert.Equal(t, []token.Kind{
		token.KindWord, token.KindPunctuation, token.KindSpace,
		token.KindWord, token.KindPunctuation,
	}, tags(tokens)[:5])
	assert.Equal(t, "Hello", tokens[0].Text(chars))
	assert.Equal(t, "world", tokens[3].Text(chars))
}

func TestLexNeverFails(t *testing.T) {
	chars := []rune("héllo 世界 🎉 \t\n")
	tokens := lex.LexToEnd(chars)
	require.NotEmpty(t, tokens)

	// Every character is accounted for: spans are contiguous and
	// sorted, covering the whole buffer (invariant 1, specialized to
	// the plain lexer with no masking).
	cursor := 0
	for _, tok := range tokens {
		assert.Equal(t, cursor, tok.Span.Start)
		cursor = tok.Span.End
	}
	assert.Equal(t, len(chars), cursor)
}

func TestLexURL(t *testing.T) {
	chars := []rune("see https://example.com/a/b?x=1 for more")
	tokens := lex.LexToEnd(chars)

	var found bool
	for _, tok := range tokens {
		if tok.Tag() == token.KindURL {
			found = true
			assert.Equal(t, "https://example.com/a/b?x=1", tok.Text(chars))
		}
	}
	assert.True(t, found)
}

func TestLexEmail(t *testing.T) {
	chars := []rune("contact me at jane.doe@example.com please")
	tokens := lex.LexToEnd(chars)

	var found bool
	for _, tok := range tokens {
		if tok.Tag() == token.KindEmailAddress {
			found = true
			assert.Equal(t, "jane.doe@example.com", tok.Text(chars))
		}
	}
	assert.True(t, found)
}

func TestLexNumberSuffix(t *testing.T) {
	chars := []rune("the 1st and 22nd")
	tokens := lex.LexToEnd(chars)

	var numbers []token.Number
	for _, tok := range tokens {
		if n, ok := tok.AsNumber(); ok {
			numbers = append(numbers, n)
		}
	}
	require.Len(t, numbers, 2)
	assert.Equal(t, token.SuffixSt, numbers[0].Suffix)
	assert.Equal(t, token.SuffixNd, numbers[1].Suffix)
}

func TestLexQuotesAndApostrophe(t *testing.T) {
	chars := []rune(`"isn't"`)
	tokens := lex.LexToEnd(chars)
	require.Len(t, tokens, 5)
	assert.True(t, tokens[0].IsQuote())
	assert.True(t, tokens[2].IsApostrophe())
	assert.True(t, tokens[4].IsQuote())
}
