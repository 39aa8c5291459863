package lint

import (
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/token"
)

// curseWords is a small curated list; AvoidCurses exists to flag
// unprofessional language in generated or reviewed prose, not to be
// an exhaustive profanity filter.
var curseWords = map[string]bool{
	"damn": true, "hell": true, "crap": true, "bastard": true,
}

// AvoidCurses flags a word from a small curated profanity list.
type AvoidCurses struct{}

func (AvoidCurses) Name() string { return "AvoidCurses" }

func (AvoidCurses) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Words() {
		if !curseWords[strings.ToLower(tok.Text(source))] {
			continue
		}
		lints = append(lints, Lint{
			Span:     tok.Span,
			Kind:     KindMiscellaneous,
			Message:  "Consider a more professional word choice.",
			Priority: 20,
		})
	}

	return lints
}

// boringWords maps a bland word to a livelier suggestion, e.g. "very"
// rarely adds information and usually has a stronger single-word
// replacement.
var boringWords = map[string]string{
	"very":        "extremely",
	"interesting": "compelling",
	"good":        "excellent",
	"bad":         "poor",
	"nice":        "pleasant",
}

// BoringWords flags a bland, overused word and proposes a more
// specific replacement.
type BoringWords struct{}

func (BoringWords) Name() string { return "BoringWords" }

func (BoringWords) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Words() {
		replacement, ok := boringWords[strings.ToLower(tok.Text(source))]
		if !ok {
			continue
		}
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindMiscellaneous,
			Message:     "This word is vague; consider a more specific alternative.",
			Priority:    85,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(replacement)}},
		})
	}

	return lints
}

// clauseConjunctions are the subordinating/coordinating conjunctions
// TerminatingConjunctions watches for immediately before a
// clause-ending comma, a pattern that usually signals a dangling
// clause ("Although, the tests passed.").
var clauseConjunctions = map[string]bool{
	"although": true, "because": true, "however": true, "therefore": true,
	"but": true, "and": true, "so": true, "yet": true,
}

// TerminatingConjunctions flags a listed conjunction immediately
// followed by a comma at the end of a clause.
type TerminatingConjunctions struct{}

func (TerminatingConjunctions) Name() string { return "TerminatingConjunctions" }

func (TerminatingConjunctions) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()
	tokens := doc.Tokens()

	for i, tok := range tokens {
		if !tok.IsWord() || !clauseConjunctions[strings.ToLower(tok.Text(source))] {
			continue
		}
		if i+1 >= len(tokens) || !tokens[i+1].IsPunctuationVariant(token.PunctComma) {
			continue
		}
		lints = append(lints, Lint{
			Span:     tok.Span,
			Kind:     KindGrammar,
			Message:  "A conjunction followed immediately by a comma often signals an incomplete clause.",
			Priority: 78,
		})
	}

	return lints
}
