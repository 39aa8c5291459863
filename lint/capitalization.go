package lint

import (
	"unicode"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/token"
)

// SentenceCapitalization flags a sentence whose first non-whitespace
// token is a lowercase-initial word, per §4.7.
type SentenceCapitalization struct{}

func (SentenceCapitalization) Name() string { return "SentenceCapitalization" }

func (SentenceCapitalization) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, sentence := range doc.Sentences() {
		tok, ok := document.Tokens(sentence).FirstNonWhitespace()
		if !ok || !tok.IsWord() {
			continue
		}
		if tok.Tag() == token.KindUnlintable {
			continue
		}

		text := tok.Text(source)
		runes := []rune(text)
		if len(runes) == 0 || !unicode.IsLower(runes[0]) {
			continue
		}

		fixed := append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...)
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindCapitalization,
			Message:     "Sentences should start with a capital letter.",
			Priority:    31,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: fixed}},
		})
	}

	return lints
}

// CapitalizePersonalPronouns flags a lone lowercase "i" tagged as a
// pronoun, proposing the capitalized "I".
type CapitalizePersonalPronouns struct{}

func (CapitalizePersonalPronouns) Name() string { return "CapitalizePersonalPronouns" }

func (CapitalizePersonalPronouns) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Words() {
		if !tok.Metadata().IsPronoun() {
			continue
		}
		if tok.Text(source) != "i" {
			continue
		}
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindCapitalization,
			Message:     `The pronoun "I" should always be capitalized.`,
			Priority:    25,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune("I")}},
		})
	}

	return lints
}

// NumberSuffixCapitalization flags a numeral whose ordinal suffix
// ("St", "ND", ...) is not fully lowercase.
type NumberSuffixCapitalization struct{}

func (NumberSuffixCapitalization) Name() string { return "NumberSuffixCapitalization" }

func (NumberSuffixCapitalization) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Tokens() {
		num, ok := tok.AsNumber()
		if !ok || num.Suffix == token.SuffixNone {
			continue
		}

		text := tok.Text(source)
		runes := []rune(text)
		suffixLen := len(num.Suffix.String())
		if suffixLen == 0 || len(runes) < suffixLen {
			continue
		}
		suffix := runes[len(runes)-suffixLen:]

		lowered := make([]rune, len(suffix))
		changed := false
		for i, r := range suffix {
			lowered[i] = unicode.ToLower(r)
			if lowered[i] != r {
				changed = true
			}
		}
		if !changed {
			continue
		}

		fixed := append(append([]rune{}, runes[:len(runes)-suffixLen]...), lowered...)
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindCapitalization,
			Message:     "Ordinal suffixes should be lowercase.",
			Priority:    48,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: fixed}},
		})
	}

	return lints
}
