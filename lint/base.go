package lint

import (
	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/pattern"
	"github.com/harperlint/harper/token"
)

// PatternLinter is the pattern-driven rule trait of §4.7: Pattern
// names what to look for, MatchToLint turns one match into a Lint.
// AdaptPattern turns a PatternLinter into a Linter by running its
// pattern over every chunk and calling MatchToLint on every surviving
// match, which is "the default lint implementation" the spec
// describes rather than a trait default method, since Go interfaces
// carry no method bodies.
type PatternLinter interface {
	Name() string
	Pattern() pattern.Pattern
	MatchToLint(matched []token.Token, source []rune) Lint
}

// AdaptPattern wraps a PatternLinter so it satisfies Linter.
func AdaptPattern(pl PatternLinter) Linter {
	return patternAdapter{pl}
}

type patternAdapter struct {
	pl PatternLinter
}

func (a patternAdapter) Name() string { return a.pl.Name() }

func (a patternAdapter) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()
	for _, chunk := range doc.Chunks() {
		for _, m := range pattern.FindAllMatches(a.pl.Pattern(), chunk, source) {
			lints = append(lints, a.pl.MatchToLint(chunk[m.Start:m.End], source))
		}
	}
	return lints
}
