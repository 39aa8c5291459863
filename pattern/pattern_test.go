package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/lex"
	"github.com/harperlint/harper/pattern"
	"github.com/harperlint/harper/token"
)

func alwaysTrue(token.Token, []rune) bool  { return true }
func alwaysFalse(token.Token, []rune) bool { return false }

func TestAnyPatternMatchesNonEmpty(t *testing.T) {
	tokens := lex.LexToEnd([]rune("cat"))
	assert.Equal(t, 1, pattern.AnyPattern{}.Matches(tokens, nil))
	assert.Equal(t, 0, pattern.AnyPattern{}.Matches(nil, nil))
}

func TestWhitespacePatternConsumesRun(t *testing.T) {
	source := []rune("a   b")
	tokens := lex.LexToEnd(source)
	// tokens[1] is the space run.
	n := pattern.WhitespacePattern{}.Matches(tokens[1:], source)
	assert.Equal(t, 1, n)
}

func TestEitherPatternReturnsFirstMatch(t *testing.T) {
	tokens := lex.LexToEnd([]rune("cat"))

	either := pattern.EitherPattern{Children: []pattern.Pattern{
		pattern.PredicatePattern{Predicate: alwaysFalse},
		pattern.PredicatePattern{Predicate: alwaysTrue},
	}}

	assert.Equal(t, 1, either.Matches(tokens, nil))
}

func TestEitherPatternNoMatch(t *testing.T) {
	tokens := lex.LexToEnd([]rune("cat"))
	either := pattern.EitherPattern{Children: []pattern.Pattern{
		pattern.PredicatePattern{Predicate: alwaysFalse},
	}}
	assert.Equal(t, 0, either.Matches(tokens, nil))
}

func TestRepeatingPatternSumsMatches(t *testing.T) {
	source := []rune("a b c")
	tokens := lex.LexToEnd(source)

	repeating := pattern.RepeatingPattern{Inner: pattern.PredicatePattern{Predicate: alwaysTrue}}
	assert.Equal(t, len(tokens), repeating.Matches(tokens, source))
}

func TestConsumesRemainingPattern(t *testing.T) {
	source := []rune("a b")
	tokens := lex.LexToEnd(source)

	full := pattern.ConsumesRemainingPattern{Inner: pattern.RepeatingPattern{
		Inner: pattern.PredicatePattern{Predicate: alwaysTrue},
	}}
	assert.Equal(t, len(tokens), full.Matches(tokens, source))

	partial := pattern.ConsumesRemainingPattern{Inner: pattern.PredicatePattern{Predicate: alwaysTrue}}
	assert.Equal(t, 0, partial.Matches(tokens, source))
}

func TestFindAllMatchesFindsEveryMatch(t *testing.T) {
	source := []rune("cat cat cat")
	tokens := lex.LexToEnd(source)

	isCat := pattern.PredicatePattern{Predicate: func(tok token.Token, source []rune) bool {
		return tok.IsWord() && tok.Text(source) == "cat"
	}}

	matches := pattern.FindAllMatches(isCat, tokens, source)
	assert.Len(t, matches, 3)
}
