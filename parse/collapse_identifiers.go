package parse

import (
	"strings"

	"github.com/harperlint/harper/charset"
	"github.com/harperlint/harper/token"
)

// identifierDictionary is the subset of dict.Dictionary
// CollapseIdentifiers needs.
type identifierDictionary interface {
	ContainsWord(word string) bool
}

// CollapseIdentifiers wraps another parser; it finds
// word(separator word)+ runs joined by case-separator characters
// (underscore, hyphen) and, if the concatenated identifier is itself
// a dictionary word, coalesces the run into a single Word token
// spanning the whole identifier, per §4.4.
type CollapseIdentifiers struct {
	Inner      Parser
	Dictionary identifierDictionary
}

func (p CollapseIdentifiers) Parse(chars []rune) []token.Token {
	tokens := p.Inner.Parse(chars)

	var out []token.Token
	i := 0
	for i < len(tokens) {
		if run, ok := identifierRun(tokens, i, chars); ok {
			joined := joinIdentifier(tokens[i:i+run], chars)
			if p.Dictionary.ContainsWord(joined) {
				first, last := tokens[i], tokens[i+run-1]
				out = append(out, token.New(first.Span.WithEnd(last.Span.End), token.Word{}))
				i += run
				continue
			}
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// identifierRun reports how many consecutive tokens starting at i
// form a word(separator word)+ sequence, and true if that length is
// at least 3 (one separator between two words).
func identifierRun(tokens []token.Token, i int, chars []rune) (int, bool) {
	if !tokens[i].IsWord() {
		return 0, false
	}

	n := 1
	for i+n+1 < len(tokens) && isCaseSeparatorToken(tokens[i+n], chars) && tokens[i+n+1].IsWord() {
		n += 2
	}
	return n, n >= 3
}

func isCaseSeparatorToken(tok token.Token, chars []rune) bool {
	if !tok.IsPunctuation() {
		return false
	}
	runes := []rune(tok.Text(chars))
	return len(runes) == 1 && charset.IsCaseSeparator(runes[0])
}

func joinIdentifier(run []token.Token, chars []rune) string {
	var b strings.Builder
	for _, tok := range run {
		b.WriteString(tok.Text(chars))
	}
	return b.String()
}
