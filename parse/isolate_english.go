package parse

import (
	"github.com/harperlint/harper/langdetect"
	"github.com/harperlint/harper/token"
)

// IsolateEnglish wraps another parser; it keeps only the sentences
// that are longer than 5 tokens and pass the language-likelihood gate
// of §4.9, dropping paragraphs in other languages before linting.
type IsolateEnglish struct {
	Inner      Parser
	Dictionary langdetect.Dictionary
}

func (p IsolateEnglish) Parse(chars []rune) []token.Token {
	tokens := p.Inner.Parse(chars)

	var out []token.Token
	for _, sentence := range splitSentences(tokens) {
		if len(sentence) <= 5 {
			continue
		}
		if !langdetect.IsEnglish(sentence, chars, p.Dictionary) {
			continue
		}
		out = append(out, sentence...)
	}
	return out
}
