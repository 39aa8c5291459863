package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/lex"
	"github.com/harperlint/harper/pattern"
)

func TestSequencePatternExactWordThenWhitespaceThenAnyWord(t *testing.T) {
	source := []rune("that cat")
	tokens := lex.LexToEnd(source)

	seq := pattern.NewSequencePattern().
		ThenExactWord("that").
		ThenWhitespace().
		ThenAnyWord()

	n := seq.Matches(tokens, source)
	assert.Equal(t, len(tokens), n)
}

func TestSequencePatternFailsOnMismatch(t *testing.T) {
	source := []rune("this cat")
	tokens := lex.LexToEnd(source)

	seq := pattern.NewSequencePattern().ThenExactWord("that")
	assert.Equal(t, 0, seq.Matches(tokens, source))
}

func TestSequencePatternThenAnyWordIn(t *testing.T) {
	source := []rune("very")
	tokens := lex.LexToEnd(source)

	seq := pattern.NewSequencePattern().ThenAnyWordIn(map[string]bool{"very": true})
	assert.Equal(t, 1, seq.Matches(tokens, source))
}

func TestSequencePatternThenOneOrMore(t *testing.T) {
	source := []rune("a a a b")
	tokens := lex.LexToEnd(source)

	seq := pattern.NewSequencePattern().ThenOneOrMore(pattern.PredicatePattern{
		Predicate: alwaysTrue,
	})
	n := seq.Matches(tokens, source)
	assert.Equal(t, len(tokens), n)
}

func TestWordPatternGroupDispatchesByFirstWord(t *testing.T) {
	source := []rune("there fore")
	tokens := lex.LexToEnd(source)

	inner := pattern.NewSequencePattern().ThenExactWord("there").ThenWhitespace().ThenExactWord("fore")
	group := pattern.NewWordPatternGroup(map[string]pattern.Pattern{"there": inner})

	n := group.Matches(tokens, source)
	assert.Equal(t, len(tokens), n)
}

func TestWordPatternGroupNoMatchForUnlistedWord(t *testing.T) {
	source := []rune("other word")
	tokens := lex.LexToEnd(source)

	group := pattern.NewWordPatternGroup(map[string]pattern.Pattern{})
	assert.Equal(t, 0, group.Matches(tokens, source))
}
