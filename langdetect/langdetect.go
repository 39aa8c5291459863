// Package langdetect implements the language-likelihood gate of spec
// §4.9: a cheap heuristic over a token slice and a dictionary, used by
// parse.IsolateEnglish to drop non-English paragraphs before linting.
//
// Grounded on spec §4.9 directly; no pack repo ships a language
// detector, and the heuristic here is specified precisely enough
// (two ratio thresholds over word/punctuation counts) that pulling in
// a statistical language-ID library would add a dependency with no
// corresponding concern to exercise -- see DESIGN.md.
package langdetect

import "github.com/harperlint/harper/token"

// Dictionary is the subset of dict.Dictionary this package depends
// on, kept narrow so langdetect never needs to import dict directly.
type Dictionary interface {
	ContainsWord(word string) bool
}

// IsEnglish reports whether tokens, read against dict, passes the
// §4.9 language-likelihood gate. chars is the buffer tokens were
// lexed from, needed to extract each word's text.
func IsEnglish(tokens []token.Token, chars []rune, dict Dictionary) bool {
	var totalWords, validWords, punctuation int

	for _, tok := range tokens {
		switch {
		case tok.IsWord():
			totalWords++
			if dict.ContainsWord(tok.Text(chars)) {
				validWords++
			}
		case tok.IsPunctuation():
			punctuation++
		}
	}

	if totalWords == 0 {
		return false
	}
	if float64(punctuation)*1.25 > float64(validWords) {
		return false
	}
	if float64(validWords)/float64(totalWords) < 0.4 {
		return false
	}
	return true
}
