// Package lex implements the character-to-token lexer (§4.1).
//
// Grounded on protocompile's experimental/parser lexer: a cursor
// walks a rune buffer, a priority-ordered dispatch picks the next
// token, and a progress guard turns "lexer made no progress" into a
// panic rather than an infinite loop. Unlike the teacher's lexer,
// this one cannot fail: malformed input always falls through to the
// Unlintable catch-all (§4.10), so there is no report/diagnostic
// dependency here at all.
package lex

import (
	"fmt"

	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// Lexer walks a rune buffer, producing one Token per call to Next.
type Lexer struct {
	chars  []rune
	cursor int
}

// New constructs a Lexer over chars, starting at index 0.
func New(chars []rune) *Lexer {
	return &Lexer{chars: chars}
}

// Done reports whether the lexer has consumed the whole buffer.
func (l *Lexer) Done() bool {
	return l.cursor >= len(l.chars)
}

// subLexer recognizes a token kind starting exactly at chars[0]. It
// returns the number of runes consumed (0 meaning "does not match
// here") and the kind, mirroring spec §4.1's
// lex_token(chars) -> Option<{next_index, kind}> contract, but
// returning a length instead of an absolute index since subLexers
// only ever see the unconsumed suffix.
type subLexer func(chars []rune) (n int, kind token.TokenKind)

// priority is the fixed dispatch order from §4.1: the first matching
// subLexer wins.
var priority = []subLexer{
	lexPunctuation,
	lexSpace,
	lexNewline,
	lexNumber,
	lexURL,
	lexEmail,
	lexWord,
}

// Next produces the next token, or (zero, false) once the buffer is
// exhausted. It never fails: if nothing in priority matches, a single
// rune becomes an Unlintable token (the catch-all of §4.1), so the
// lexer always makes progress.
func (l *Lexer) Next() (token.Token, bool) {
	if l.Done() {
		return token.Token{}, false
	}

	start := l.cursor
	rest := l.chars[l.cursor:]

	for _, sub := range priority {
		if n, kind := sub(rest); n > 0 {
			l.cursor += n
			return token.New(span.New(start, l.cursor), kind), true
		}
	}

	// Catch-all: never panics, always consumes exactly one rune.
	l.cursor++
	if l.cursor == start {
		panic(fmt.Sprintf("lex: failed to make progress at index %d", start))
	}
	return token.New(span.New(start, l.cursor), token.Unlintable{}), true
}

// LexToEnd iterates the lexer until exhausted, returning every
// produced Token in order. This is lex_to_end from §4.1.
func LexToEnd(chars []rune) []token.Token {
	lexer := New(chars)
	var tokens []token.Token
	for {
		tok, ok := lexer.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
