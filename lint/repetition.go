package lint

import (
	"fmt"
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/pattern"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// functionWords are the short, closed-class words RepeatedWords
// checks for back-to-back repetition (function-word repetition, e.g.
// "the the cat sat", is almost always a typo rather than stylistic
// emphasis).
var functionWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "was": true, "are": true,
	"were": true, "and": true, "or": true, "but": true, "of": true, "to": true,
	"in": true, "that": true, "this": true, "it": true, "for": true, "with": true,
}

// RepeatedWords flags the same function word repeated across a
// single run of whitespace, e.g. "the the".
type RepeatedWords struct{}

func (RepeatedWords) Name() string { return "RepeatedWords" }

func (RepeatedWords) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()
	tokens := doc.Tokens()

	for i := 0; i+2 < len(tokens); i++ {
		first, gap, second := tokens[i], tokens[i+1], tokens[i+2]
		if !first.IsWord() || !gap.IsWhitespace() || !second.IsWord() {
			continue
		}

		a, b := strings.ToLower(first.Text(source)), strings.ToLower(second.Text(source))
		if a != b || !functionWords[a] {
			continue
		}

		lints = append(lints, Lint{
			Span:        span.Join(first.Span, gap.Span, second.Span),
			Kind:        KindRepetition,
			Message:     fmt.Sprintf("Did you mean to repeat %q?", first.Text(source)),
			Priority:    35,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(first.Text(source))}},
		})
	}

	return lints
}

// MultipleSequentialPronouns scans every window of three tokens
// separated by single whitespace tokens and flags it when at least two
// of the three are pronouns. It attaches no suggestions, whether two
// or all three of the tokens are pronouns.
type MultipleSequentialPronouns struct{}

func (MultipleSequentialPronouns) Name() string { return "MultipleSequentialPronouns" }

func (MultipleSequentialPronouns) Lint(doc *document.Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	isPronoun := func(tok token.Token) bool { return tok.IsWord() && tok.Metadata().IsPronoun() }

	for i := 0; i+4 < len(tokens); i++ {
		a, gap1, b, gap2, c := tokens[i], tokens[i+1], tokens[i+2], tokens[i+3], tokens[i+4]
		if !gap1.IsWhitespace() || !gap2.IsWhitespace() {
			continue
		}

		count := 0
		for _, t := range []token.Token{a, b, c} {
			if isPronoun(t) {
				count++
			}
		}
		if count < 2 {
			continue
		}

		lint := Lint{
			Span:     span.Join(a.Span, gap1.Span, b.Span, gap2.Span, c.Span),
			Kind:     KindRepetition,
			Message:  "Multiple pronouns in a row can be a sign of a grammatical mistake.",
			Priority: 60,
		}
		lints = append(lints, lint)
	}

	return lints
}

// thatThat matches a "that" immediately followed by whitespace then
// another "that" -- almost always meant as "that which".
var thatThat = pattern.NewSequencePattern().
	ThenExactWord("that").
	ThenWhitespace().
	ThenExactWord("that")

// ThatWhich flags "that that" and proposes "that which".
type ThatWhich struct{}

func (ThatWhich) Name() string            { return "ThatWhich" }
func (ThatWhich) Pattern() pattern.Pattern { return thatThat }

func (ThatWhich) MatchToLint(matched []token.Token, source []rune) Lint {
	return Lint{
		Span:        document.Tokens(matched).Span(),
		Kind:        KindRepetition,
		Message:     `Did you mean "that which" instead of "that that"?`,
		Priority:    42,
		Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune("that which")}},
	}
}
