package lint_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/internal/goldentest"
	"github.com/harperlint/harper/lint"
	"github.com/harperlint/harper/parse"
)

// TestGoldenCorpus exercises the Group end-to-end against the
// scenarios under testdata/, rendering every surviving lint as a
// stable one-line-per-lint summary and diffing it against a golden
// expectation file.
func TestGoldenCorpus(t *testing.T) {
	corpus := goldentest.Corpus{Root: "testdata", Extension: "txt", OutputExtension: "golden"}

	corpus.Run(t, func(t *testing.T, name, input string) string {
		text := strings.TrimSuffix(input, "\n")
		doc := document.New([]rune(text), parse.PlainEnglish{})

		group := lint.NewGroup(lint.DefaultConfig(), fakeDict{}, noopMatcher{})
		lints, err := group.Lint(doc)
		if err != nil {
			t.Fatalf("lint: %v", err)
		}

		sort.Slice(lints, func(i, j int) bool { return lints[i].Span.Start < lints[j].Span.Start })

		var b strings.Builder
		for _, l := range lints {
			fmt.Fprintf(&b, "%d-%d %s p%d: %s", l.Span.Start, l.Span.End, kindName(l.Kind), l.Priority, l.Message)
			for _, s := range l.Suggestions {
				fmt.Fprintf(&b, " -> %q", string(s.Value))
			}
			b.WriteByte('\n')
		}
		return b.String()
	})
}

type noopMatcher struct{}

func (noopMatcher) FuzzyMatch(word string, maxDistance, maxResults int) []dict.Match { return nil }

func kindName(k lint.Kind) string {
	switch k {
	case lint.KindSpelling:
		return "Spelling"
	case lint.KindCapitalization:
		return "Capitalization"
	case lint.KindFormatting:
		return "Formatting"
	case lint.KindReadability:
		return "Readability"
	case lint.KindRepetition:
		return "Repetition"
	case lint.KindMiscellaneous:
		return "Miscellaneous"
	case lint.KindGrammar:
		return "Grammar"
	default:
		return "Unknown"
	}
}
