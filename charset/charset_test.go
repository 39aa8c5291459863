package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperlint/harper/charset"
)

func TestIsWordRune(t *testing.T) {
	assert.True(t, charset.IsWordRune('a'))
	assert.False(t, charset.IsWordRune('3'))
	assert.False(t, charset.IsWordRune(' '))
	assert.False(t, charset.IsWordRune('.'))
	assert.False(t, charset.IsWordRune('日'))
}

func TestIsCJKAndIsEmoji(t *testing.T) {
	assert.True(t, charset.IsCJK('日'))
	assert.False(t, charset.IsCJK('a'))
	assert.True(t, charset.IsEmoji('😀'))
	assert.False(t, charset.IsEmoji('a'))
}

func TestIsCaseSeparator(t *testing.T) {
	assert.True(t, charset.IsCaseSeparator('_'))
	assert.True(t, charset.IsCaseSeparator('-'))
	assert.False(t, charset.IsCaseSeparator('a'))
}

func TestWidthAndGraphemeCount(t *testing.T) {
	assert.Equal(t, 5, charset.Width("hello"))
	assert.Equal(t, 5, charset.GraphemeCount("hello"))

	// A CJK character renders two columns wide but is still one
	// grapheme cluster.
	assert.Equal(t, 2, charset.Width("日"))
	assert.Equal(t, 1, charset.GraphemeCount("日"))
}
