// Package lint implements the rule engine of spec §4.7: individual
// rules detect problems in a document and propose suggestions; a
// Group runs every enabled rule and resolves overlapping output into a
// single, deterministically ordered lint list.
//
// Grounded on protocompile's linker/validate rule style (many small,
// independently testable checks run over a shared IR) generalized
// from "validate a descriptor" to "lint a document".
package lint

import (
	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/span"
)

// Kind categorizes a Lint by what kind of problem it reports.
type Kind int8

const (
	KindSpelling Kind = iota
	KindCapitalization
	KindFormatting
	KindReadability
	KindRepetition
	KindMiscellaneous
	KindGrammar
)

// SuggestionKind enumerates the ways a Suggestion can be applied. Only
// ReplaceWith exists today, per §6's serialization note, but the type
// is kept distinct from a bare []rune so the wire shape can grow.
type SuggestionKind int8

const (
	SuggestionReplaceWith SuggestionKind = iota
)

// Suggestion is a proposed fix for a Lint's span.
type Suggestion struct {
	Kind  SuggestionKind
	Value []rune
}

// Lint is a single diagnostic, per §6's serialization shape.
type Lint struct {
	Span        span.Span
	Kind        Kind
	Message     string
	Priority    int
	Suggestions []Suggestion
}

// Linter is the free-form rule trait of §4.7.
type Linter interface {
	Name() string
	Lint(doc *document.Document) []Lint
}
