package document

import (
	"iter"

	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// Tokens is a token slice carrying the TokenStringExt helpers of
// §4.5: filtered iterators used throughout pattern/lint code that
// only cares about tokens of one kind at a time.
type Tokens []token.Token

// IterWords yields every Word token and its index.
func (t Tokens) IterWords() iter.Seq2[int, token.Token] {
	return t.filterTag(token.KindWord)
}

// IterQuotes yields every Quote token and its index.
func (t Tokens) IterQuotes() iter.Seq2[int, token.Token] {
	return t.filter(token.Token.IsQuote)
}

// IterEllipses yields every horizontal-ellipsis token and its index.
func (t Tokens) IterEllipses() iter.Seq2[int, token.Token] {
	return t.filter(func(tok token.Token) bool {
		return tok.IsPunctuationVariant(token.PunctEllipsis)
	})
}

// IterNumbers yields every Number token and its index.
func (t Tokens) IterNumbers() iter.Seq2[int, token.Token] {
	return t.filterTag(token.KindNumber)
}

// IterApostrophes yields every apostrophe token and its index.
func (t Tokens) IterApostrophes() iter.Seq2[int, token.Token] {
	return t.filter(token.Token.IsApostrophe)
}

// IterSpaces yields every Space token and its index.
func (t Tokens) IterSpaces() iter.Seq2[int, token.Token] {
	return t.filterTag(token.KindSpace)
}

// IterLinkingVerbIndices yields the index of every Word token whose
// metadata marks it as a linking verb.
func (t Tokens) IterLinkingVerbIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, tok := range t {
			if tok.Metadata().IsLinkingVerb() {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// FirstNonWhitespace returns the first token that is not whitespace,
// and true, or the zero Token and false if every token is whitespace.
func (t Tokens) FirstNonWhitespace() (token.Token, bool) {
	for _, tok := range t {
		if !tok.IsWhitespace() {
			return tok, true
		}
	}
	return token.Token{}, false
}

// LastWord returns the last Word token in t, and true, or the zero
// Token and false if t has no Word tokens.
func (t Tokens) LastWord() (token.Token, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].IsWord() {
			return t[i], true
		}
	}
	return token.Token{}, false
}

// Span returns the smallest span covering every token in t.
func (t Tokens) Span() span.Span {
	spans := make([]span.Span, len(t))
	for i, tok := range t {
		spans[i] = tok.Span
	}
	return span.Join(spans...)
}

func (t Tokens) filterTag(tag token.Kind) iter.Seq2[int, token.Token] {
	return t.filter(func(tok token.Token) bool { return tok.Tag() == tag })
}

func (t Tokens) filter(pred func(token.Token) bool) iter.Seq2[int, token.Token] {
	return func(yield func(int, token.Token) bool) {
		for i, tok := range t {
			if pred(tok) {
				if !yield(i, tok) {
					return
				}
			}
		}
	}
}
