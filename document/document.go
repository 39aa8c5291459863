// Package document implements the document model of spec §4.5: buffer
// plus parsed tokens, the contraction-fusion and quote-matching
// post-passes, sentence/chunk iteration, and suggestion application.
//
// Grounded on protocompile's Context/File pair (a Context owns its
// token stream and is reparsed, not mutated in place, on edit) and on
// `internal/interval`'s preference for doing structural bookkeeping
// once at construction time rather than on every query.
package document

import (
	"github.com/petermattis/goid"

	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// Parser is the subset of parse.Parser this package depends on.
type Parser interface {
	Parse(chars []rune) []token.Token
}

// CheckOwnership gates the debug-only goroutine-ownership assertion
// of §5 ("no operation on a document may execute concurrently with
// another on the same document"). Off by default since the check adds
// a goid.Get() call to every mutating/iterating entry point; tests and
// debug builds can set this to true.
var CheckOwnership = false

// Document is a character buffer plus its parsed, post-processed
// token stream.
type Document struct {
	chars  []rune
	tokens []token.Token
	parser Parser

	owner int64
}

// New constructs a Document: stores chars, invokes parser, then runs
// the post-passes named in §4.5 (contraction fusion, then quote
// pair-matching, in that order because quote matching references
// token indices that fusion may have shifted).
func New(chars []rune, parser Parser) *Document {
	d := &Document{chars: chars, parser: parser, owner: goid.Get()}
	d.reparse()
	return d
}

func (d *Document) reparse() {
	tokens := d.parser.Parse(d.chars)
	tokens = fuseContractions(tokens)
	tokens = matchQuotes(tokens)
	d.tokens = tokens
}

func (d *Document) checkOwnership() {
	if CheckOwnership && goid.Get() != d.owner {
		panic("document: accessed from a goroutine other than its owner")
	}
}

// Chars returns the document's character buffer. Callers must treat
// it as read-only except through ApplySuggestion.
func (d *Document) Chars() []rune {
	d.checkOwnership()
	return d.chars
}

// Tokens returns every token in the document, in order.
func (d *Document) Tokens() []token.Token {
	d.checkOwnership()
	return d.tokens
}

// Words returns every Word token, in order.
func (d *Document) Words() []token.Token {
	d.checkOwnership()
	return filterTag(d.tokens, token.KindWord)
}

// Sentences returns the token slices running between (and including)
// sentence-terminating punctuation, per §4.5.
func (d *Document) Sentences() [][]token.Token {
	d.checkOwnership()
	return sentenceSlices(d.tokens)
}

// Chunks returns the token slices running between ParagraphBreak
// tokens, per §4.5.
func (d *Document) Chunks() [][]token.Token {
	d.checkOwnership()
	return chunkSlices(d.tokens)
}

// MetadataSource is the subset of dict.Dictionary's public contract
// AnnotateWords depends on.
type MetadataSource interface {
	Metadata(word string) token.WordMetadata
}

// AnnotateWords merges dictionary metadata onto every Word token's
// payload, via WordMetadata.Or, preferring metadata already attached
// by a parser over the dictionary's. Parsing itself never consults a
// dictionary (§4.4), so this is the step that lets rules depending on
// Token.Metadata (pronoun/noun/verb tags) see anything at all; callers
// run it once after constructing a Document and after every
// ApplySuggestion-triggered reparse.
func (d *Document) AnnotateWords(source MetadataSource) {
	d.checkOwnership()
	for i, tok := range d.tokens {
		w, ok := tok.AsWord()
		if !ok {
			continue
		}
		merged := w.Metadata.Or(source.Metadata(tok.Text(d.chars)))
		d.tokens[i] = token.New(tok.Span, token.Word{Metadata: merged})
	}
}

// ApplySuggestion splices replacement into span and reparses the
// document from scratch, per §4.5. It is infallible once span lies
// within the buffer; an out-of-range span is a programming error and
// panics, matching span.Content's own contract.
func (d *Document) ApplySuggestion(s span.Span, replacement []rune) {
	d.checkOwnership()
	_ = s.Content(d.chars) // validates s lies within the buffer; panics otherwise

	next := make([]rune, 0, len(d.chars)-s.Len()+len(replacement))
	next = append(next, d.chars[:s.Start]...)
	next = append(next, replacement...)
	next = append(next, d.chars[s.End:]...)

	d.chars = next
	d.reparse()
}

func filterTag(tokens []token.Token, tag token.Kind) []token.Token {
	var out []token.Token
	for _, tok := range tokens {
		if tok.Tag() == tag {
			out = append(out, tok)
		}
	}
	return out
}

func sentenceSlices(tokens []token.Token) [][]token.Token {
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

func chunkSlices(tokens []token.Token) [][]token.Token {
	var chunks [][]token.Token
	start := 0
	for i, tok := range tokens {
		if tok.Tag() == token.KindParagraphBreak {
			chunks = append(chunks, tokens[start:i])
			start = i + 1
		}
	}
	if start < len(tokens) {
		chunks = append(chunks, tokens[start:])
	}
	return chunks
}
