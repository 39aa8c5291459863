package lint

import (
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/token"
)

// expectedSuffix returns the ordinal suffix n's value demands:
// teens 11-19 are always "th" regardless of their last digit.
func expectedSuffix(n int) token.NumberSuffix {
	if n%100 >= 11 && n%100 <= 19 {
		return token.SuffixTh
	}
	switch n % 10 {
	case 1:
		return token.SuffixSt
	case 2:
		return token.SuffixNd
	case 3:
		return token.SuffixRd
	default:
		return token.SuffixTh
	}
}

// CorrectNumberSuffix flags a numeral whose ordinal suffix disagrees
// with the value it's attached to (e.g. "2st" should be "2nd").
type CorrectNumberSuffix struct{}

func (CorrectNumberSuffix) Name() string { return "CorrectNumberSuffix" }

func (CorrectNumberSuffix) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Tokens() {
		num, ok := tok.AsNumber()
		if !ok || num.Suffix == token.SuffixNone {
			continue
		}
		want := expectedSuffix(int(num.Value))
		if want == num.Suffix {
			continue
		}

		digits := trimOrdinalSuffix(tok.Text(source))
		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindGrammar,
			Message:     "This ordinal suffix doesn't match the number.",
			Priority:    47,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(digits + want.String())}},
		})
	}

	return lints
}

func trimOrdinalSuffix(s string) string {
	for i, r := range s {
		if !(r >= '0' && r <= '9') && r != '.' && r != '-' {
			return s[:i]
		}
	}
	return s
}

// LinkingVerbs flags a linking verb ("is", "seems", ...) that is not
// preceded by a noun, a common sign of a dropped or misplaced
// subject.
type LinkingVerbs struct{}

func (LinkingVerbs) Name() string { return "LinkingVerbs" }

func (LinkingVerbs) Lint(doc *document.Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	for idx := range document.Tokens(tokens).IterLinkingVerbIndices() {
		precededByNoun := false
		for j := idx - 1; j >= 0; j-- {
			if tokens[j].IsWhitespace() {
				continue
			}
			precededByNoun = tokens[j].Metadata().IsNoun()
			break
		}
		if precededByNoun {
			continue
		}

		lints = append(lints, Lint{
			Span:     tokens[idx].Span,
			Kind:     KindGrammar,
			Message:  "This linking verb doesn't appear to follow a noun.",
			Priority: 82,
		})
	}

	return lints
}

// UseGenitive flags "there"/"they're" immediately before a noun or
// adjective, where the possessive "their" was almost certainly meant.
type UseGenitive struct{}

func (UseGenitive) Name() string { return "UseGenitive" }

func (UseGenitive) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()
	tokens := doc.Tokens()

	for i, tok := range tokens {
		if !tok.IsWord() {
			continue
		}
		word := strings.ToLower(tok.Text(source))
		if word != "there" && word != "they're" {
			continue
		}

		next, ok := nextNonWhitespace(tokens, i+1)
		if !ok || !next.IsWord() {
			continue
		}
		meta := next.Metadata()
		if !meta.IsNoun() && !meta.IsAdjective() {
			continue
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindGrammar,
			Message:     `Did you mean the possessive "their"?`,
			Priority:    38,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune("their")}},
		})
	}

	return lints
}

func nextNonWhitespace(tokens []token.Token, start int) (token.Token, bool) {
	for i := start; i < len(tokens); i++ {
		if !tokens[i].IsWhitespace() {
			return tokens[i], true
		}
	}
	return token.Token{}, false
}
