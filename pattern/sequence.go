package pattern

import (
	"strings"

	"github.com/harperlint/harper/charset"
	"github.com/harperlint/harper/token"
)

// SequencePattern matches a fixed sequence of child patterns in
// order, succeeding with the sum of their lengths, or 0 if any child
// fails to match, per §4.6.
type SequencePattern struct {
	children []Pattern
}

// NewSequencePattern returns an empty SequencePattern ready for the
// then_* builders below.
func NewSequencePattern() *SequencePattern {
	return &SequencePattern{}
}

func (s *SequencePattern) Matches(tokens []token.Token, source []rune) int {
	total := 0
	for _, child := range s.children {
		if total > len(tokens) {
			return 0
		}
		n := child.Matches(tokens[total:], source)
		if n == 0 {
			return 0
		}
		total += n
	}
	return total
}

func (s *SequencePattern) then(p Pattern) *SequencePattern {
	s.children = append(s.children, p)
	return s
}

// ThenExactWord matches a single Word token whose text equals word
// exactly (case-sensitive).
func (s *SequencePattern) ThenExactWord(word string) *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsWord() && tok.Text(source) == word
	}})
}

// ThenAnyWord matches any single Word token.
func (s *SequencePattern) ThenAnyWord() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsWord()
	}})
}

// ThenWhitespace matches a run of one or more whitespace tokens.
func (s *SequencePattern) ThenWhitespace() *SequencePattern {
	return s.then(WhitespacePattern{})
}

// ThenAnyWordIn matches a single Word token whose lowercased text is
// a member of set.
func (s *SequencePattern) ThenAnyWordIn(set map[string]bool) *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsWord() && set[strings.ToLower(tok.Text(source))]
	}})
}

// ThenNoun matches a single Word token tagged as a noun.
func (s *SequencePattern) ThenNoun() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsNoun()
	}})
}

// ThenVerb matches a single Word token tagged as a verb.
func (s *SequencePattern) ThenVerb() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsVerb()
	}})
}

// ThenAdjective matches a single Word token tagged as an adjective.
func (s *SequencePattern) ThenAdjective() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsAdjective()
	}})
}

// ThenAdverb matches a single Word token tagged as an adverb.
func (s *SequencePattern) ThenAdverb() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsAdverb()
	}})
}

// ThenLinkingVerb matches a single Word token tagged as a linking
// verb.
func (s *SequencePattern) ThenLinkingVerb() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsLinkingVerb()
	}})
}

// ThenPronoun matches a single Word token tagged as a pronoun.
func (s *SequencePattern) ThenPronoun() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Metadata().IsPronoun()
	}})
}

// ThenPunctuation matches any single punctuation token.
func (s *SequencePattern) ThenPunctuation() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsPunctuation()
	}})
}

// ThenComma matches a single comma token.
func (s *SequencePattern) ThenComma() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsPunctuationVariant(token.PunctComma)
	}})
}

// ThenPeriod matches a single period token.
func (s *SequencePattern) ThenPeriod() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsPunctuationVariant(token.PunctPeriod)
	}})
}

// ThenCaseSeparator matches a single underscore/hyphen punctuation
// token, per §4.4's identifier-joining character set.
func (s *SequencePattern) ThenCaseSeparator() *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		if !tok.IsPunctuation() {
			return false
		}
		runes := []rune(tok.Text(source))
		return len(runes) == 1 && charset.IsCaseSeparator(runes[0])
	}})
}

// ThenOneOrMore matches p repeated one or more times.
func (s *SequencePattern) ThenOneOrMore(p Pattern) *SequencePattern {
	return s.then(oneOrMore{inner: p})
}

type oneOrMore struct {
	inner Pattern
}

func (o oneOrMore) Matches(tokens []token.Token, source []rune) int {
	first := o.inner.Matches(tokens, source)
	if first == 0 {
		return 0
	}
	total := first
	for total < len(tokens) {
		n := o.inner.Matches(tokens[total:], source)
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// ThenLoose matches a single token whose Kind.Tag() equals kind,
// ignoring any inner payload data.
func (s *SequencePattern) ThenLoose(kind token.Kind) *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Tag() == kind
	}})
}

// ThenStrict matches a single token whose TokenKind is deeply equal
// to want, including any inner payload data.
func (s *SequencePattern) ThenStrict(want token.TokenKind) *SequencePattern {
	return s.then(PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.Kind == want
	}})
}
