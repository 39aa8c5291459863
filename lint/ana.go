package lint

import (
	"strings"

	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/pattern"
	"github.com/harperlint/harper/token"
)

// initialismVowelFirstLetters are the letters an uppercase run
// (treated as an initialism) is pronounced starting with a vowel
// sound for, per §4.7's AnA heuristic step 1.
var initialismVowelFirstLetters = map[byte]bool{
	'A': true, 'E': true, 'F': true, 'H': true, 'I': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'R': true, 'S': true, 'X': true,
}

// hasVowelSound implements the precedence-ordered heuristic of
// §4.7 for whether word begins with a vowel sound, after first
// stripping any hyphenated suffix ("x-ray" -> "x").
func hasVowelSound(word string) bool {
	if word == "" {
		return false
	}
	if idx := strings.IndexByte(word, '-'); idx > 0 {
		word = word[:idx]
	}

	if isAllUpper(word) {
		return initialismVowelFirstLetters[word[0]]
	}

	w := strings.ToLower(word)

	switch {
	case hasPrefix(w, "uk"), hasPrefix(w, "euph"), hasPrefix(w, "eug"), hasPrefix(w, "eul"), hasPrefix(w, "euc"), w == "once":
		return false
	case hasPrefix(w, "hour"), hasPrefix(w, "hon"), hasPrefix(w, "unin"), hasPrefix(w, "unim"), hasPrefix(w, "una"), hasPrefix(w, "unu"), hasPrefix(w, "herb"), hasPrefix(w, "urb"):
		return true
	case isUnVowelConsonant(w):
		return false
	case hasPrefix(w, "un"):
		return true
	case hasPrefix(w, "urg"):
		return true
	case hasPrefix(w, "ut"), hasPrefix(w, "ur"), hasPrefix(w, "eur"), hasPrefix(w, "uw"), hasPrefix(w, "use"):
		return false
	case isOneVowelPattern(w):
		return true
	case hasPrefix(w, "one"):
		return false
	case w == "sos", hasPrefix(w, "rz"), hasPrefix(w, "ng"), hasPrefix(w, "nv"), w == "x", w == "xbox", hasPrefix(w, "heir"), hasPrefix(w, "honor"):
		return true
	case isJuConsonant(w):
		return false
	case isXVowel(w):
		return true
	default:
		return isVowelLetter(rune(w[0]))
	}
}

func hasPrefix(s, prefix string) bool { return strings.HasPrefix(s, prefix) }

func isAllUpper(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

func isVowelLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// isUnVowelConsonant matches un(i|a|u)* as a consonant case.
func isUnVowelConsonant(w string) bool {
	if !strings.HasPrefix(w, "un") || len(w) < 3 {
		return false
	}
	switch w[2] {
	case 'i', 'a', 'u':
		return true
	default:
		return false
	}
}

// isOneVowelPattern matches one(a|e|i|u)(l|d)*.
func isOneVowelPattern(w string) bool {
	if !strings.HasPrefix(w, "one") || len(w) < 4 {
		return false
	}
	switch w[3] {
	case 'a', 'e', 'i', 'u':
		if len(w) == 4 {
			return true
		}
		switch w[4] {
		case 'l', 'd':
			return true
		}
	}
	return false
}

// isJuConsonant matches ju(o|u)n* and jur(a|i|o)*.
func isJuConsonant(w string) bool {
	if strings.HasPrefix(w, "ju") && len(w) > 3 && w[3] == 'n' {
		switch w[2] {
		case 'o', 'u':
			return true
		}
	}
	if strings.HasPrefix(w, "jur") && len(w) > 3 {
		switch w[3] {
		case 'a', 'i', 'o':
			return true
		}
	}
	return false
}

// isXVowel matches x(-|'|.|o|s)*.
func isXVowel(w string) bool {
	if !strings.HasPrefix(w, "x") {
		return false
	}
	if len(w) == 1 {
		return false
	}
	switch w[1] {
	case '-', '\'', '.', 'o', 's':
		return true
	default:
		return false
	}
}

// anA matches the word "a" or "an" followed by whitespace then
// another word, which AnA then judges for article agreement.
var anA = pattern.NewSequencePattern().
	ThenAnyWordIn(map[string]bool{"a": true, "an": true}).
	ThenWhitespace().
	ThenAnyWord()

// AnA flags "a"/"an" misuse ahead of a vowel- or consonant-sounding
// word, per the precedence rules of §4.7.
type AnA struct{}

func (AnA) Name() string            { return "AnA" }
func (AnA) Pattern() pattern.Pattern { return anA }

func (AnA) MatchToLint(matched []token.Token, source []rune) Lint {
	article := matched[0]
	next := matched[len(matched)-1]

	wantAn := hasVowelSound(next.Text(source))
	haveAn := strings.EqualFold(article.Text(source), "an")
	if wantAn == haveAn {
		return Lint{}
	}

	want := "a"
	if wantAn {
		want = "an"
	}
	if article.Text(source)[0] >= 'A' && article.Text(source)[0] <= 'Z' {
		want = strings.ToUpper(want[:1]) + want[1:]
	}

	return Lint{
		Span:        article.Span,
		Kind:        KindGrammar,
		Message:     `Use "a" before a consonant sound and "an" before a vowel sound.`,
		Priority:    50,
		Suggestions: []Suggestion{{Kind: SuggestionReplaceWith, Value: []rune(want)}},
	}
}

// newAnALinter adapts AnA into a Linter, filtering out the zero Lint
// MatchToLint returns when the article already agrees -- AdaptPattern
// can't do this filtering since PatternLinter has no "skip" signal.
func newAnALinter() Linter {
	return anaLinter{}
}

type anaLinter struct{}

func (anaLinter) Name() string { return "AnA" }

func (anaLinter) Lint(doc *document.Document) []Lint {
	var lints []Lint
	rule := AnA{}
	source := doc.Chars()
	for _, chunk := range doc.Chunks() {
		for _, m := range pattern.FindAllMatches(rule.Pattern(), chunk, source) {
			lint := rule.MatchToLint(chunk[m.Start:m.End], source)
			if lint.Span.IsEmpty() && lint.Message == "" {
				continue
			}
			lints = append(lints, lint)
		}
	}
	return lints
}
