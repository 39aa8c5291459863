package document

import "github.com/harperlint/harper/token"

// matchQuotes collects Quote token indices in order and pairs them
// two-by-two (0<->1, 2<->3, ...), setting each one's Twin to the
// other's index, per §4.5. An odd trailing quote is left with
// Twin == token.NoTwin, fuel for the unclosed-quote rule.
func matchQuotes(tokens []token.Token) []token.Token {
	var indices []int
	for i, tok := range tokens {
		if tok.IsQuote() {
			indices = append(indices, i)
		}
	}

	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	for pair := 0; pair+1 < len(indices); pair += 2 {
		a, b := indices[pair], indices[pair+1]
		out[a] = withTwin(out[a], b)
		out[b] = withTwin(out[b], a)
	}

	return out
}

func withTwin(tok token.Token, twin int) token.Token {
	p, ok := tok.AsPunctuation()
	if !ok {
		return tok
	}
	p.Twin = twin
	return token.Token{Span: tok.Span, Kind: p}
}
