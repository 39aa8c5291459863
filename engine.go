package harper

import (
	"io/fs"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/lint"
	"github.com/harperlint/harper/parse"
	"github.com/harperlint/harper/span"
)

// Engine is the public facade tying a Dictionary, a Parser, and a
// lint.Group together: construct it once per (dictionary, parser,
// config) combination and reuse it across every document.
//
// Grounded on protocompile's Compiler type: one long-lived value that
// owns every stage of the pipeline and exposes a narrow entrypoint
// (Compile -> here, Lint/NewDocument) rather than handing callers the
// individual stages to wire up themselves.
type Engine struct {
	dictionary *dict.Dictionary
	matcher    dict.Matcher
	parser     parse.Parser
	group      *lint.Group
}

// NewEngine builds an Engine from an already-loaded Dictionary. The
// fuzzy-match backend is the sorted/automaton-style one (§4.3);
// dict.NewLinearDictionary is an equally valid substitute for callers
// who want to benchmark the two backends against each other.
func NewEngine(dictionary *dict.Dictionary, parser parse.Parser, config *lint.Config) *Engine {
	matcher := dict.NewSortedDictionary(dictionary)
	return &Engine{
		dictionary: dictionary,
		matcher:    matcher,
		parser:     parser,
		group:      lint.NewGroup(config, dictionary, matcher),
	}
}

// NewEngineFromFS loads a Dictionary from an fs.FS (see
// dict.LoadFromFS) and builds an Engine around it.
func NewEngineFromFS(fsys fs.FS, wordListGlob, affixGlob string, parser parse.Parser, config *lint.Config) (*Engine, error) {
	dictionary, err := dict.LoadFromFS(fsys, wordListGlob, affixGlob)
	if err != nil {
		return nil, err
	}
	return NewEngine(dictionary, parser, config), nil
}

// NewDocument parses chars with the Engine's parser and annotates its
// Word tokens with dictionary metadata, so every rule that inspects
// Token.Metadata (pronoun/noun/verb/linking-verb tags) sees a fully
// tagged token stream.
func (e *Engine) NewDocument(chars []rune) *document.Document {
	doc := document.New(chars, e.parser)
	doc.AnnotateWords(e.dictionary)
	return doc
}

// Lint parses chars into a Document and runs every enabled rule over
// it, returning the combined, overlap-resolved Lint list.
func (e *Engine) Lint(chars []rune) ([]lint.Lint, error) {
	return e.group.Lint(e.NewDocument(chars))
}

// LintDocument runs every enabled rule over an already-constructed
// Document, for callers that want to apply suggestions and re-lint
// without reparsing from raw characters each time.
func (e *Engine) LintDocument(doc *document.Document) ([]lint.Lint, error) {
	return e.group.Lint(doc)
}

// ApplySuggestion splices replacement into doc at s, reparses it, and
// re-annotates the result with dictionary metadata -- the second step
// a bare document.Document.ApplySuggestion call can't do on its own,
// since Document has no dictionary of its own (§4.4's parsers never
// consult one).
func (e *Engine) ApplySuggestion(doc *document.Document, s span.Span, replacement []rune) {
	doc.ApplySuggestion(s, replacement)
	doc.AnnotateWords(e.dictionary)
}

// Stats returns a structpb.Struct snapshot of the Engine's dictionary,
// suitable for a diagnostics endpoint or status command.
func (e *Engine) Stats() (*structpb.Struct, error) {
	return e.dictionary.BuildStats()
}
