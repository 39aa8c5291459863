// Package token defines the Token and TokenKind types produced by the
// lexer and consumed by the document, pattern, and lint packages.
//
// Grounded on protocompile's experimental/token package: a Token
// pairs a span with a kind, and the kind's payload (here, a sealed
// TokenKind interface rather than an arena-backed raw struct) carries
// whatever per-variant data spec §3 names.
package token

import "github.com/harperlint/harper/span"

// Token is a single lexical element: a span into the source buffer
// plus its TokenKind.
type Token struct {
	Span span.Span
	Kind TokenKind
}

// New constructs a Token.
func New(s span.Span, kind TokenKind) Token {
	return Token{Span: s, Kind: kind}
}

// Tag returns the coarse Kind of the token, a shorthand for
// t.Kind.Tag().
func (t Token) Tag() Kind {
	if t.Kind == nil {
		return KindUnlintable
	}
	return t.Kind.Tag()
}

// Text extracts the token's characters from chars.
func (t Token) Text(chars []rune) string {
	return string(t.Span.Content(chars))
}

// AsWord returns the token's Word payload and true, if it is a word.
func (t Token) AsWord() (Word, bool) {
	w, ok := t.Kind.(Word)
	return w, ok
}

// AsNumber returns the token's Number payload and true, if it is a
// number.
func (t Token) AsNumber() (Number, bool) {
	n, ok := t.Kind.(Number)
	return n, ok
}

// AsPunctuation returns the token's Punctuation payload and true, if
// it is punctuation.
func (t Token) AsPunctuation() (Punctuation, bool) {
	p, ok := t.Kind.(Punctuation)
	return p, ok
}

// IsWord reports whether this token is a Word.
func (t Token) IsWord() bool {
	return t.Tag() == KindWord
}

// IsWhitespace reports whether this token is a Space or Newline.
func (t Token) IsWhitespace() bool {
	tag := t.Tag()
	return tag == KindSpace || tag == KindNewline
}

// IsPunctuation reports whether this token is punctuation, optionally
// further narrowed by variant using IsPunctuationVariant.
func (t Token) IsPunctuation() bool {
	return t.Tag() == KindPunctuation
}

// IsPunctuationVariant reports whether this token is punctuation of
// exactly the given variant.
func (t Token) IsPunctuationVariant(v PunctVariant) bool {
	p, ok := t.AsPunctuation()
	return ok && p.Variant == v
}

// IsQuote reports whether this token is a quote mark.
func (t Token) IsQuote() bool {
	return t.IsPunctuationVariant(PunctQuote)
}

// IsApostrophe reports whether this token is an apostrophe.
func (t Token) IsApostrophe() bool {
	return t.IsPunctuationVariant(PunctApostrophe)
}

// IsSentenceTerminator reports whether this token ends a sentence.
func (t Token) IsSentenceTerminator() bool {
	p, ok := t.AsPunctuation()
	return ok && p.IsSentenceTerminator()
}

// Metadata returns the token's WordMetadata if it is a Word, or the
// zero value otherwise. Convenience for rules that only care about
// the metadata and don't need to branch on IsWord themselves.
func (t Token) Metadata() WordMetadata {
	if w, ok := t.AsWord(); ok {
		return w.Metadata
	}
	return WordMetadata{}
}
