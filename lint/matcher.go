package lint

import (
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// ngramReplacements is the curated static list of multi-word phrases
// with a preferred replacement, per §4.7: split compound words such as
// "there fore" and wordy phrases such as "due to the fact that".
// Keys are lowercase words joined by a single space.
var ngramReplacements = map[string]string{
	"there fore":           "Therefore",
	"in spite of":          "despite",
	"a lot of":             "many",
	"due to the fact that": "because",
}

const maxNgramWords = 6

// Matcher flags an exact phrase from the curated n-gram replacement
// list. It carries the highest priority of any rule (15, lower being
// more important) since it catches specific, high-confidence typos
// rather than general style issues.
type Matcher struct{}

func (Matcher) Name() string { return "Matcher" }

func (Matcher) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, chunk := range doc.Chunks() {
		for start := 0; start < len(chunk); start++ {
			if !chunk[start].IsWord() {
				continue
			}
			matchNgramsFrom(chunk, start, source, &lints)
		}
	}

	return lints
}

// matchNgramsFrom tries every phrase of 1..maxNgramWords words
// starting at chunk[start], where consecutive words are separated by
// exactly one whitespace token, and appends a Lint for every phrase
// found in ngramReplacements.
func matchNgramsFrom(chunk []token.Token, start int, source []rune, lints *[]Lint) {
	words := []string{strings.ToLower(chunk[start].Text(source))}
	end := start

	for n := 1; n <= maxNgramWords; n++ {
		if phrase, ok := ngramReplacements[strings.Join(words, " ")]; ok {
			*lints = append(*lints, Lint{
				Span:        span.Join(chunk[start].Span, chunk[end].Span),
				Kind:        KindMiscellaneous,
				Message:     "This phrase is usually written differently.",
				Priority:    15,
				Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(phrase)}},
			})
		}

		next := end + 1
		if next >= len(chunk) || !chunk[next].IsWhitespace() {
			return
		}
		next++
		if next >= len(chunk) || !chunk[next].IsWord() {
			return
		}

		words = append(words, strings.ToLower(chunk[next].Text(source)))
		end = next
	}
}
