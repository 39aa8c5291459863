package document

import (
	"github.com/harperlint/harper/token"
)

// fuseContractions scans for (Word, Apostrophe, Word) triples and
// fuses each non-overlapping occurrence into a single Word token
// spanning all three, per §4.5. Token metadata is left untouched here;
// higher-layer parsers may set possessive/conjunction flags based on
// the trailing segment. The overlap rule (next match starts at least
// three token positions after the previous) falls out naturally from
// always resuming the scan after a fused triple.
func fuseContractions(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))

	for i := 0; i < len(tokens); {
		if i+2 < len(tokens) && tokens[i].IsWord() && tokens[i+1].IsApostrophe() && tokens[i+2].IsWord() {
			first, last := tokens[i], tokens[i+2]
			out = append(out, token.Token{
				Span: first.Span.WithEnd(last.Span.End),
				Kind: first.Kind,
			})
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}

	return out
}
