package lint

import (
	"fmt"

	"github.com/harperlint/harper/charset"
	"github.com/harperlint/harper/document"
)

// LongSentences flags any sentence containing more than 40 words.
type LongSentences struct{}

func (LongSentences) Name() string { return "LongSentences" }

func (LongSentences) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, sentence := range doc.Sentences() {
		words := document.Tokens(sentence)
		count := 0
		for range words.IterWords() {
			count++
		}
		if count <= 40 {
			continue
		}

		span := words.Span()
		text := string(span.Content(source))

		lints = append(lints, Lint{
			Span: span,
			Kind: KindReadability,
			Message: fmt.Sprintf(
				"This sentence is %d words long (%d visible characters, display width %d); consider splitting it up.",
				count, charset.GraphemeCount(text), charset.Width(text),
			),
			Priority: 70,
		})
	}

	return lints
}

// ones/tens give the English word form of 0-20 and the tens digits,
// the lookup table SpelledNumbers composes from per §4.7.
var ones = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// spellOutNumber renders n (0-100) as English words.
func spellOutNumber(n int) (string, bool) {
	if n < 0 || n > 100 {
		return "", false
	}
	if n == 100 {
		return "one hundred", true
	}
	if n <= 20 {
		return ones[n], true
	}
	tensDigit, onesDigit := n/10, n%10
	if onesDigit == 0 {
		return tens[tensDigit], true
	}
	return tens[tensDigit] + "-" + ones[onesDigit], true
}

// SpelledNumbers flags an integer numeral no greater than 100,
// proposing its spelled-out word form.
type SpelledNumbers struct{}

func (SpelledNumbers) Name() string { return "SpelledNumbers" }

func (SpelledNumbers) Lint(doc *document.Document) []Lint {
	var lints []Lint

	for _, tok := range doc.Tokens() {
		num, ok := tok.AsNumber()
		if !ok {
			continue
		}
		if num.Value != float64(int(num.Value)) {
			continue
		}

		n := int(num.Value)
		word, ok := spellOutNumber(n)
		if !ok {
			continue
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindReadability,
			Message:     "Spell out numbers up to one hundred.",
			Priority:    75,
			Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(word)}},
		})
	}

	return lints
}
