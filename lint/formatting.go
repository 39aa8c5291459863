package lint

import (
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/token"
)

// EllipsisLength flags a horizontal-ellipsis token made up of only
// periods whose count is not exactly three.
type EllipsisLength struct{}

func (EllipsisLength) Name() string { return "EllipsisLength" }

func (EllipsisLength) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Tokens() {
		if !tok.IsPunctuationVariant(token.PunctEllipsis) {
			continue
		}
		text := tok.Text(source)
		if !onlyPeriods(text) || len([]rune(text)) == 3 {
			continue
		}
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindFormatting,
			Message:     "An ellipsis should be exactly three periods.",
			Priority:    45,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune("...")}},
		})
	}

	return lints
}

func onlyPeriods(s string) bool {
	for _, r := range s {
		if r != '.' {
			return false
		}
	}
	return len(s) > 0
}

// DotInitialisms flags a bare "ie" or "eg" word immediately followed
// by punctuation, proposing the dotted initialism form.
type DotInitialisms struct{}

func (DotInitialisms) Name() string { return "DotInitialisms" }

func (DotInitialisms) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()
	tokens := doc.Tokens()

	for i, tok := range tokens {
		if !tok.IsWord() {
			continue
		}
		if i+1 >= len(tokens) || !tokens[i+1].IsPunctuation() {
			continue
		}

		var fixed string
		switch strings.ToLower(tok.Text(source)) {
		case "ie":
			fixed = "i.e."
		case "eg":
			fixed = "e.g."
		default:
			continue
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindFormatting,
			Message:     "This initialism is conventionally written with periods.",
			Priority:    52,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(fixed)}},
		})
	}

	return lints
}

// Spaces flags a run of more than one space/tab, proposing collapse
// to a single space.
type Spaces struct{}

func (Spaces) Name() string { return "Spaces" }

func (Spaces) Lint(doc *document.Document) []Lint {
	var lints []Lint

	for _, tok := range doc.Tokens() {
		sp, ok := tok.Kind.(token.Space)
		if !ok || sp.Count <= 1 {
			continue
		}
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindFormatting,
			Message:     "Extra whitespace detected.",
			Priority:    55,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(" ")}},
		})
	}

	return lints
}

// UnclosedQuotes flags a quote token left with no pairing twin after
// document.matchQuotes has run.
type UnclosedQuotes struct{}

func (UnclosedQuotes) Name() string { return "UnclosedQuotes" }

func (UnclosedQuotes) Lint(doc *document.Document) []Lint {
	var lints []Lint

	for _, tok := range document.Tokens(doc.Tokens()).IterQuotes() {
		p, _ := tok.AsPunctuation()
		if p.Twin != token.NoTwin {
			continue
		}
		lints = append(lints, Lint{
			Span:     tok.Span,
			Kind:     KindFormatting,
			Message:  "This quotation mark is never closed.",
			Priority: 40,
		})
	}

	return lints
}

// WrongQuotes flags a straight quote, proposing the curly quote that
// matches its position (opening vs. closing, deduced from its twin
// index).
type WrongQuotes struct{}

func (WrongQuotes) Name() string { return "WrongQuotes" }

func (WrongQuotes) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for idx, tok := range document.Tokens(doc.Tokens()).IterQuotes() {
		if tok.Text(source) != `"` {
			continue
		}
		p, _ := tok.AsPunctuation()

		replacement := "“"
		if p.Twin != token.NoTwin && p.Twin < idx {
			replacement = "”"
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindFormatting,
			Message:     "Use a curly quotation mark instead of a straight one.",
			Priority:    58,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(replacement)}},
		})
	}

	return lints
}
