package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/mask"
	"github.com/harperlint/harper/span"
)

func TestPushAllowedCoalescesContiguous(t *testing.T) {
	m := mask.New()
	m.PushAllowed(span.New(0, 3))
	m.PushAllowed(span.New(3, 6))
	m.PushAllowed(span.New(10, 12))

	assert.Equal(t, []span.Span{span.New(0, 6), span.New(10, 12)}, m.Spans())
}

func TestPushAllowedSkipsEmpty(t *testing.T) {
	m := mask.New()
	m.PushAllowed(span.New(2, 2))
	assert.Equal(t, 0, m.Len())
}

func TestIterAllowedYieldsSlices(t *testing.T) {
	source := []rune("hello world")
	m := mask.New()
	m.PushAllowed(span.New(0, 5))
	m.PushAllowed(span.New(6, 11))

	var texts []string
	for _, chars := range m.IterAllowed(source) {
		texts = append(texts, string(chars))
	}
	assert.Equal(t, []string{"hello", "world"}, texts)
}

func TestMergeWhitespaceSep(t *testing.T) {
	source := []rune("a  b\tc")
	m := mask.New()
	m.PushAllowed(span.New(0, 1))
	m.PushAllowed(span.New(3, 4))
	m.PushAllowed(span.New(5, 6))

	m.MergeWhitespaceSep(source)
	assert.Equal(t, []span.Span{span.New(0, 6)}, m.Spans())
}

func TestMergeWhitespaceSepStopsAtNonWhitespace(t *testing.T) {
	source := []rune("a.b c")
	m := mask.New()
	m.PushAllowed(span.New(0, 1))
	m.PushAllowed(span.New(2, 5))

	m.MergeWhitespaceSep(source)
	assert.Equal(t, []span.Span{span.New(0, 1), span.New(2, 5)}, m.Spans())
}
