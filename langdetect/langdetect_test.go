package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/langdetect"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

type fakeDict map[string]bool

func (f fakeDict) ContainsWord(word string) bool { return f[word] }

func wordTok(start, end int) token.Token {
	return token.New(span.New(start, end), token.Word{})
}

func punctTok(start, end int) token.Token {
	return token.New(span.New(start, end), token.Punctuation{Variant: token.PunctComma})
}

func TestIsEnglishAcceptsMostlyValidWords(t *testing.T) {
	chars := []rune("the cat sat")
	tokens := []token.Token{wordTok(0, 3), wordTok(4, 7), wordTok(8, 11)}
	dict := fakeDict{"the": true, "cat": true, "sat": true}

	assert.True(t, langdetect.IsEnglish(tokens, chars, dict))
}

func TestIsEnglishRejectsLowValidRatio(t *testing.T) {
	chars := []rune("xuz qrx zzz")
	tokens := []token.Token{wordTok(0, 3), wordTok(4, 7), wordTok(8, 11)}
	dict := fakeDict{}

	assert.False(t, langdetect.IsEnglish(tokens, chars, dict))
}

func TestIsEnglishRejectsHeavyPunctuation(t *testing.T) {
	chars := []rune("a,,,b")
	tokens := []token.Token{
		wordTok(0, 1),
		punctTok(1, 2), punctTok(2, 3), punctTok(3, 4),
		wordTok(4, 5),
	}
	dict := fakeDict{"a": true, "b": true}

	assert.False(t, langdetect.IsEnglish(tokens, chars, dict))
}

func TestIsEnglishRejectsEmpty(t *testing.T) {
	assert.False(t, langdetect.IsEnglish(nil, nil, fakeDict{}))
}
