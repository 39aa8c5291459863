package lint

import (
	"sync"
	"unicode"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/document"
)

// SpellingDictionary is the subset of dict.Dictionary the Spellcheck
// rule depends on.
type SpellingDictionary interface {
	ContainsWord(word string) bool
}

// FuzzyMatcher is the subset of dict.Matcher the Spellcheck rule
// depends on -- either dict.LinearDictionary or dict.SortedDictionary
// satisfies it.
type FuzzyMatcher interface {
	FuzzyMatch(word string, maxDistance, maxResults int) []dict.Match
}

// Spellcheck is the rule of §4.8: every word not present in the
// lexicon is looked up with backing-off fuzzy distance, and the top 3
// candidates become suggestions.
type Spellcheck struct {
	Dictionary SpellingDictionary
	Matcher    FuzzyMatcher

	mu    sync.Mutex
	cache map[string][]string
}

func (s *Spellcheck) Name() string { return "Spellcheck" }

func (s *Spellcheck) Lint(doc *document.Document) []Lint {
	var lints []Lint
	source := doc.Chars()

	for _, tok := range doc.Words() {
		text := tok.Text(source)
		if s.Dictionary.ContainsWord(text) {
			continue
		}

		suggestions := s.suggest(text)
		if len(suggestions) == 0 {
			continue
		}

		lintSuggestions := make([]Suggestion, len(suggestions))
		for i, sug := range suggestions {
			lintSuggestions[i] = Suggestion{Kind: SuggestionReplaceWith, Value: []rune(sug)}
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindSpelling,
			Message:     "Did you mean one of these?",
			Priority:    63,
			Suggestions: lintSuggestions,
		})
	}

	return lints
}

// suggest returns the cached or freshly computed suggestion list for
// word, backing off max_distance 2 -> 3 -> 4 until a non-empty result
// set is found, keeping the top 3 and matching the misspelled word's
// capitalization.
func (s *Spellcheck) suggest(word string) []string {
	s.mu.Lock()
	if s.cache == nil {
		s.cache = make(map[string][]string)
	}
	if cached, ok := s.cache[word]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	var matches []dict.Match
	for _, maxDistance := range []int{2, 3, 4} {
		matches = s.Matcher.FuzzyMatch(word, maxDistance, 100)
		if len(matches) > 0 {
			break
		}
	}

	if len(matches) > 3 {
		matches = matches[:3]
	}

	capitalize := len([]rune(word)) > 0 && unicode.IsUpper([]rune(word)[0])
	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.Word
		if capitalize {
			suggestions[i] = capitalizeFirst(m.Word)
		}
	}

	s.mu.Lock()
	s.cache[word] = suggestions
	s.mu.Unlock()

	return suggestions
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
