package lint

import (
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/harperlint/harper/document"
)

// Group owns one instance of every rule plus the spell-checker and a
// Config, per §4.7. Lint runs every enabled rule concurrently with
// errgroup, then resolves overlaps across the combined output.
//
// Grounded on protocompile's parser/linker pipeline, which runs
// independent per-file validation passes behind a bounded worker pool
// and merges their reporter.Handler output; generalized here from
// "independent files" to "independent rules over one document".
type Group struct {
	linters []Linter
	config  *Config
}

// NewGroup builds a Group from every named rule in §4.7, wiring the
// Spellcheck rule to dictionary and matcher. A nil config enables
// every rule.
func NewGroup(config *Config, dictionary SpellingDictionary, matcher FuzzyMatcher) *Group {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.FillDefaultValues()
	}

	return &Group{
		config: config,
		linters: []Linter{
			SentenceCapitalization{},
			CapitalizePersonalPronouns{},
			NumberSuffixCapitalization{},
			EllipsisLength{},
			DotInitialisms{},
			Spaces{},
			UnclosedQuotes{},
			WrongQuotes{},
			LongSentences{},
			SpelledNumbers{},
			RepeatedWords{},
			MultipleSequentialPronouns{},
			AdaptPattern(ThatWhich{}),
			newAnALinter(),
			AvoidCurses{},
			BoringWords{},
			TerminatingConjunctions{},
			CorrectNumberSuffix{},
			LinkingVerbs{},
			UseGenitive{},
			Matcher{},
			&Spellcheck{Dictionary: dictionary, Matcher: matcher},
		},
	}
}

// Lint runs every rule enabled in the Group's Config concurrently,
// then concatenates and resolves their output, per §4.7.
//
// Every enabled rule only calls read-only Document accessors, so
// running them from separate goroutines is safe as long as
// document.CheckOwnership stays off (its debug-only assertion targets
// single-writer misuse, not this package's bounded fan-out reader
// pattern -- see DESIGN.md).
func (g *Group) Lint(doc *document.Document) ([]Lint, error) {
	enabled := make([]Linter, 0, len(g.linters))
	for _, l := range g.linters {
		if g.config.Rules[l.Name()] {
			enabled = append(enabled, l)
		}
	}

	results := make([][]Lint, len(enabled))
	var eg errgroup.Group
	for i, l := range enabled {
		i, l := i, l
		eg.Go(func() error {
			results[i] = l.Lint(doc)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []Lint
	for _, r := range results {
		all = append(all, r...)
	}

	return ResolveOverlaps(all), nil
}

// ResolveOverlaps sorts lints by span start, then for each adjacent
// overlapping pair drops the one with the higher (less important)
// priority number, per §4.7.
func ResolveOverlaps(lints []Lint) []Lint {
	if len(lints) == 0 {
		return nil
	}

	sorted := append([]Lint(nil), lints...)
	slices.SortStableFunc(sorted, func(a, b Lint) int {
		return a.Span.Start - b.Span.Start
	})

	kept := make([]bool, len(sorted))
	for i := range sorted {
		kept[i] = true
	}

	for i := 0; i+1 < len(sorted); i++ {
		if !kept[i] {
			continue
		}
		for j := i + 1; j < len(sorted) && sorted[j].Span.Start < sorted[i].Span.End; j++ {
			if !kept[j] {
				continue
			}
			if sorted[i].Priority <= sorted[j].Priority {
				kept[j] = false
			} else {
				kept[i] = false
				break
			}
		}
	}

	var result []Lint
	for i, l := range sorted {
		if kept[i] {
			result = append(result, l)
		}
	}
	return result
}
