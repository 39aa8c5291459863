package lint_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperlint/harper/dict"
	"github.com/harperlint/harper/document"
	"github.com/harperlint/harper/lint"
	"github.com/harperlint/harper/parse"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

func newDoc(t *testing.T, text string) *document.Document {
	t.Helper()
	return document.New([]rune(text), parse.PlainEnglish{})
}

func TestSentenceCapitalizationFlagsLowercaseStart(t *testing.T) {
	doc := newDoc(t, "cats are great. Dogs are too.")
	lints := lint.SentenceCapitalization{}.Lint(doc)
	require.Len(t, lints, 1)
	require.Len(t, lints[0].Suggestions, 1)
	assert.Equal(t, "Cats", string(lints[0].Suggestions[0].Value))
}

func TestSentenceCapitalizationSkipsAlreadyCapitalized(t *testing.T) {
	doc := newDoc(t, "Cats are great.")
	lints := lint.SentenceCapitalization{}.Lint(doc)
	assert.Empty(t, lints)
}

func TestCapitalizePersonalPronouns(t *testing.T) {
	doc := newDoc(t, "i am here")
	pronoun := token.BoolPtr(true)
	doc.AnnotateWords(fakeDict{"i": token.WordMetadata{Noun: &token.NounMetadata{IsPronoun: pronoun}}})

	lints := lint.CapitalizePersonalPronouns{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "I", string(lints[0].Suggestions[0].Value))
}

func TestSpacesFlagsExtraWhitespace(t *testing.T) {
	doc := newDoc(t, "cat  dog")
	lints := lint.Spaces{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, " ", string(lints[0].Suggestions[0].Value))
}

func TestUnclosedQuotesAndWrongQuotes(t *testing.T) {
	doc := newDoc(t, `She said "hi`)

	unclosed := lint.UnclosedQuotes{}.Lint(doc)
	require.Len(t, unclosed, 1)

	wrong := lint.WrongQuotes{}.Lint(doc)
	require.Len(t, wrong, 1)
	assert.Equal(t, "“", string(wrong[0].Suggestions[0].Value))
}

func TestEllipsisLengthFlagsWrongCount(t *testing.T) {
	doc := newDoc(t, "wait....")
	lints := lint.EllipsisLength{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "...", string(lints[0].Suggestions[0].Value))
}

func TestLongSentencesFlagsOverForty(t *testing.T) {
	words := make([]string, 45)
	for i := range words {
		words[i] = "word"
	}
	doc := newDoc(t, strings.Join(words, " ")+".")

	lints := lint.LongSentences{}.Lint(doc)
	require.Len(t, lints, 1)
}

func TestSpelledNumbersProposesWordForm(t *testing.T) {
	doc := newDoc(t, "I have 12 cats.")
	lints := lint.SpelledNumbers{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "twelve", string(lints[0].Suggestions[0].Value))
}

func TestCorrectNumberSuffixFlagsMismatch(t *testing.T) {
	doc := newDoc(t, "the 2st place")
	lints := lint.CorrectNumberSuffix{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "2nd", string(lints[0].Suggestions[0].Value))
}

func TestThatWhichViaAdaptPattern(t *testing.T) {
	doc := newDoc(t, "I see that that cat is fine.")
	linter := lint.AdaptPattern(lint.ThatWhich{})
	lints := linter.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "that which", string(lints[0].Suggestions[0].Value))
}

func TestThatWhichLintMatchesExpectedShapeExactly(t *testing.T) {
	doc := newDoc(t, "that that cat")
	lints := lint.AdaptPattern(lint.ThatWhich{}).Lint(doc)
	require.Len(t, lints, 1)

	want := lint.Lint{
		Span:        span.New(0, 9),
		Kind:        lint.KindRepetition,
		Message:     `Did you mean "that which" instead of "that that"?`,
		Priority:    42,
		Suggestions: []lint.Suggestion{{Kind: lint.SuggestionReplaceWith, Value: []rune("that which")}},
	}
	if diff := cmp.Diff(want, lints[0]); diff != "" {
		t.Fatalf("lint mismatch (-want +got):\n%s", diff)
	}
}

func TestMatcherFlagsCuratedNgram(t *testing.T) {
	doc := newDoc(t, "There fore we left.")
	lints := lint.Matcher{}.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "Therefore", string(lints[0].Suggestions[0].Value))
}

type fakeDict map[string]token.WordMetadata

func (f fakeDict) Metadata(word string) token.WordMetadata { return f[word] }
func (f fakeDict) ContainsWord(word string) bool           { _, ok := f[word]; return ok }

type fakeMatcher map[string][]dict.Match

func (f fakeMatcher) FuzzyMatch(word string, maxDistance, maxResults int) []dict.Match {
	return f[word]
}

func TestSpellcheckSuggestsAndCapitalizes(t *testing.T) {
	doc := newDoc(t, "Helo world")
	rule := &lint.Spellcheck{
		Dictionary: fakeDict{"world": token.WordMetadata{}},
		Matcher: fakeMatcher{
			"Helo": []dict.Match{{Word: "hello", Distance: 1}},
		},
	}

	lints := rule.Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "Hello", string(lints[0].Suggestions[0].Value))
	assert.Equal(t, lint.KindSpelling, lints[0].Kind)
}

func TestSpellcheckBacksOffMaxDistance(t *testing.T) {
	doc := newDoc(t, "xyzzy")
	calls := []int{}
	matcher := recordingMatcher{calls: &calls}
	rule := &lint.Spellcheck{Dictionary: fakeDict{}, Matcher: matcher}

	rule.Lint(doc)
	assert.Equal(t, []int{2, 3, 4}, calls)
}

type recordingMatcher struct {
	calls *[]int
}

func (r recordingMatcher) FuzzyMatch(word string, maxDistance, maxResults int) []dict.Match {
	*r.calls = append(*r.calls, maxDistance)
	return nil
}

func TestResolveOverlapsKeepsLowerPriority(t *testing.T) {
	lints := []lint.Lint{
		{Span: span.New(0, 5), Priority: 80},
		{Span: span.New(2, 8), Priority: 10},
	}
	resolved := lint.ResolveOverlaps(lints)
	require.Len(t, resolved, 1)
	assert.Equal(t, 10, resolved[0].Priority)
}

func TestConfigFillDefaultValuesEnablesEverythingByDefault(t *testing.T) {
	cfg := &lint.Config{Rules: map[string]bool{"Spaces": false}}
	cfg.FillDefaultValues()
	assert.False(t, cfg.Rules["Spaces"])
	assert.True(t, cfg.Rules["Matcher"])
}

func TestGroupLintRunsEnabledRulesConcurrently(t *testing.T) {
	doc := newDoc(t, "cat  cat dog.")
	cfg := lint.DefaultConfig()
	group := lint.NewGroup(cfg, fakeDict{}, fakeMatcher{})

	lints, err := group.Lint(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, lints)
}

