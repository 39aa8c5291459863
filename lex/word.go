package lex

import (
	"github.com/harperlint/harper/charset"
	"github.com/harperlint/harper/token"
)

// lexWord consumes the longest run of "English-lingual" characters,
// per §4.1: alphabetic, non-numeric, non-whitespace, non-punctuation,
// non-CJK, non-emoji. Minimum length 1.
func lexWord(chars []rune) (int, token.TokenKind) {
	if len(chars) == 0 || !charset.IsWordRune(chars[0]) {
		return 0, nil
	}

	n := 1
	for n < len(chars) && charset.IsWordRune(chars[n]) {
		n++
	}
	return n, token.Word{}
}
