// Package parse implements the parser contract and parser-composition
// layer of spec §4.4: PlainEnglish runs the raw lexer; MaskParser
// restricts an inner parser to masked regions; Markdown, CommitMessage,
// IsolateEnglish, and CollapseIdentifiers wrap or compose these to
// realize "only parse the comments" / "only parse prose inside
// Markdown".
//
// Grounded on protocompile's experimental/parser package: a small
// Parser contract plus composition wrappers, the same shape as the
// teacher's driver -> token-stream -> AST pipeline, generalized here
// from "one fixed grammar" to "pluggable parser + masker composition".
package parse

import (
	"github.com/harperlint/harper/lex"
	"github.com/harperlint/harper/mask"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// Parser is the contract of §4.4: parse(chars) -> [Token], spans
// measured in character indices into chars.
type Parser interface {
	Parse(chars []rune) []token.Token
}

// PlainEnglish runs the lexer to completion, per §4.4.
type PlainEnglish struct{}

func (PlainEnglish) Parse(chars []rune) []token.Token {
	return lex.LexToEnd(chars)
}

// MaskParser composes a Masker with an inner Parser: build the mask,
// invoke the inner parser on each allowed slice, shift produced spans
// by the slice's start, and insert a ParagraphBreak between chunks
// whose intervening characters contain a newline, per §4.4.
type MaskParser struct {
	Masker mask.Masker
	Inner  Parser
}

func (p MaskParser) Parse(chars []rune) []token.Token {
	m := p.Masker.CreateMask(chars)
	spans := m.Spans()

	var out []token.Token
	for i, s := range spans {
		slice := s.Content(chars)
		for _, tok := range p.Inner.Parse(slice) {
			out = append(out, shiftToken(tok, s.Start))
		}

		if i+1 < len(spans) {
			between := chars[s.End:spans[i+1].Start]
			if containsNewline(between) {
				out = append(out, token.New(span.New(s.End, s.End), token.ParagraphBreak{}))
			}
		}
	}
	return out
}

// shiftToken returns tok with its span shifted by offset.
func shiftToken(tok token.Token, offset int) token.Token {
	return token.Token{Span: tok.Span.Shift(offset), Kind: tok.Kind}
}

func containsNewline(chars []rune) bool {
	for _, c := range chars {
		if c == '\n' {
			return true
		}
	}
	return false
}

// splitSentences slices tokens at sentence boundaries: a sentence runs
// up to and including the next sentence-terminating punctuation
// token, matching the GLOSSARY's definition used throughout §4.5/§4.9.
func splitSentences(tokens []token.Token) [][]token.Token {
	var sentences [][]token.Token
	start := 0
	for i, tok := range tokens {
		if tok.IsSentenceTerminator() {
			sentences = append(sentences, tokens[start:i+1])
			start = i + 1
		}
	}
	if start < len(tokens) {
		sentences = append(sentences, tokens[start:])
	}
	return sentences
}
