// Package pattern implements the token-prefix pattern matcher of spec
// §4.6: Pattern.Matches(tokens, source) returns the length of a match
// at the start of tokens (0 meaning no match), and composite patterns
// build larger matchers out of smaller ones.
//
// Grounded on protocompile's experimental/predicate package: a small
// closure-friendly matcher interface composed via AST-shaped
// combinators (And/Or/sequence), generalized here from "matches an AST
// node" to "matches a token-slice prefix".
package pattern

import "github.com/harperlint/harper/token"

// Pattern matches a prefix of tokens. Matches returns the number of
// tokens consumed by a match starting at tokens[0], or 0 for no match.
type Pattern interface {
	Matches(tokens []token.Token, source []rune) int
}

// AnyPattern matches any single token, as long as tokens is non-empty.
type AnyPattern struct{}

func (AnyPattern) Matches(tokens []token.Token, source []rune) int {
	if len(tokens) == 0 {
		return 0
	}
	return 1
}

// WhitespacePattern consumes a run of consecutive whitespace tokens.
type WhitespacePattern struct{}

func (WhitespacePattern) Matches(tokens []token.Token, source []rune) int {
	n := 0
	for n < len(tokens) && tokens[n].IsWhitespace() {
		n++
	}
	return n
}

// PredicatePattern matches exactly one token if pred holds for it.
type PredicatePattern struct {
	Predicate func(token.Token, []rune) bool
}

func (p PredicatePattern) Matches(tokens []token.Token, source []rune) int {
	if len(tokens) == 0 {
		return 0
	}
	if p.Predicate(tokens[0], source) {
		return 1
	}
	return 0
}

// EitherPattern matches the first child pattern that matches,
// returning its length; 0 if none match.
type EitherPattern struct {
	Children []Pattern
}

func (e EitherPattern) Matches(tokens []token.Token, source []rune) int {
	for _, child := range e.Children {
		if n := child.Matches(tokens, source); n > 0 {
			return n
		}
	}
	return 0
}

// RepeatingPattern matches inner repeated zero or more times, summing
// the lengths of each successful repetition.
type RepeatingPattern struct {
	Inner Pattern
}

func (r RepeatingPattern) Matches(tokens []token.Token, source []rune) int {
	total := 0
	for total < len(tokens) {
		n := r.Inner.Matches(tokens[total:], source)
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// ConsumesRemainingPattern matches only if Inner's match consumes
// every remaining token; otherwise it reports no match.
type ConsumesRemainingPattern struct {
	Inner Pattern
}

func (c ConsumesRemainingPattern) Matches(tokens []token.Token, source []rune) int {
	n := c.Inner.Matches(tokens, source)
	if n != len(tokens) {
		return 0
	}
	return n
}

// WordPatternGroup dispatches by the first token's literal word text
// to a specific inner pattern, avoiding an O(rules * tokens) scan over
// every rule at every position. Lookup is case-insensitive.
type WordPatternGroup struct {
	byWord map[string]Pattern
}

// NewWordPatternGroup builds a WordPatternGroup from a lowercase word
// -> Pattern map.
func NewWordPatternGroup(byWord map[string]Pattern) WordPatternGroup {
	return WordPatternGroup{byWord: byWord}
}

func (g WordPatternGroup) Matches(tokens []token.Token, source []rune) int {
	if len(tokens) == 0 || !tokens[0].IsWord() {
		return 0
	}
	word := lowerASCII(tokens[0].Text(source))
	p, ok := g.byWord[word]
	if !ok {
		return 0
	}
	return p.Matches(tokens, source)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// FindAllMatches scans every starting index in tokens, collects every
// non-zero-length match, then drops overlapping matches by keeping the
// earlier one, per §4.6.
func FindAllMatches(p Pattern, tokens []token.Token, source []rune) []Match {
	var matches []Match
	for i := range tokens {
		if n := p.Matches(tokens[i:], source); n > 0 {
			matches = append(matches, Match{Start: i, End: i + n})
		}
	}
	return removeOverlaps(matches)
}

// Match is a half-open range of token indices produced by a
// pattern match.
type Match struct {
	Start, End int
}

func removeOverlaps(matches []Match) []Match {
	var kept []Match
	for _, m := range matches {
		if n := len(kept); n > 0 && m.Start < kept[n-1].End {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
