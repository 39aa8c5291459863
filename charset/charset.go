// Package charset classifies individual runes for the lexer and
// computes approximate display widths for rule messages.
//
// Grounded on protocompile's internal/ext/unicodex width helpers,
// generalized from "terminal column width of a diagnostic" to
// "is this rune part of an English word run" plus the same column
// math, now backed directly by github.com/rivo/uniseg instead of a
// hand-rolled tab-stop walker.
package charset

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// cjkBlocks are the Unicode blocks treated as CJK for the purposes of
// excluding a rune from an "English-lingual" word run (§4.1).
var cjkBlocks = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Bopomofo,
}

// emojiBlocks approximates "emoji" as the Unicode blocks most emoji
// are drawn from. This is necessarily a heuristic: there is no
// "IsEmoji" in the standard library, and maintaining a full emoji
// sequence table is out of scope for the lexer (it only needs to
// exclude single emoji runes from word runs, not render them).
var emojiBlocks = []*unicode.RangeTable{
	unicode.So, // Symbol, other -- covers most pictographic emoji.
	unicode.Sk, // Symbol, modifier -- covers skin-tone modifiers.
}

// IsWordRune reports whether r can appear inside a Word token: it
// must be alphabetic, and not numeric, whitespace, punctuation, CJK,
// or emoji.
func IsWordRune(r rune) bool {
	if !unicode.IsLetter(r) {
		return false
	}
	if unicode.IsSpace(r) || unicode.IsPunct(r) {
		return false
	}
	if IsCJK(r) || IsEmoji(r) {
		return false
	}
	return true
}

// IsCJK reports whether r belongs to a CJK Unicode block.
func IsCJK(r rune) bool {
	return unicode.In(r, cjkBlocks...)
}

// IsEmoji reports whether r belongs to one of the Unicode blocks
// emoji are predominantly drawn from.
func IsEmoji(r rune) bool {
	return unicode.In(r, emojiBlocks...)
}

// IsCaseSeparator reports whether r is a character used to join
// identifier segments for CollapseIdentifiers (§4.4): underscore or
// hyphen.
func IsCaseSeparator(r rune) bool {
	return r == '_' || r == '-'
}

// Width returns the approximate terminal column width of s, used by
// readability rules (e.g. LongSentences) that reason about visible
// length rather than rune count.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// GraphemeCount returns the number of user-perceived characters in s,
// which can differ from len([]rune(s)) for combining sequences.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
