package lex

import (
	"strconv"
	"unicode"

	"github.com/harperlint/harper/token"
)

// suffixes maps a lowercased 2-letter ordinal suffix to its enum
// value, checked after the numeral itself is lexed (§4.1).
var suffixes = map[string]token.NumberSuffix{
	"st": token.SuffixSt,
	"nd": token.SuffixNd,
	"rd": token.SuffixRd,
	"th": token.SuffixTh,
}

// lexNumber must start with a digit; it consumes the longest prefix
// parseable as a decimal number (digits, with at most one '.'), then
// looks for a trailing ordinal suffix.
func lexNumber(chars []rune) (int, token.TokenKind) {
	if len(chars) == 0 || !unicode.IsDigit(chars[0]) {
		return 0, nil
	}

	n := 0
	sawDot := false
loop:
	for n < len(chars) {
		switch {
		case unicode.IsDigit(chars[n]):
			n++
		case chars[n] == '.' && !sawDot && n+1 < len(chars) && unicode.IsDigit(chars[n+1]):
			sawDot = true
			n++
		default:
			break loop
		}
	}

	value, err := strconv.ParseFloat(string(chars[:n]), 64)
	if err != nil {
		// Should not happen given the scan above, but a number token
		// that cannot be parsed is not a number at all.
		return 0, nil
	}

	suffix := token.SuffixNone
	if n+2 <= len(chars) {
		candidate := string(chars[n : n+2])
		lower := []rune(candidate)
		for i, r := range lower {
			lower[i] = unicode.ToLower(r)
		}
		if s, ok := suffixes[string(lower)]; ok {
			// The suffix must not simply be the start of a longer word,
			// e.g. "1sting" is not "1st" + "ing".
			if n+2 == len(chars) || !isWordContinuation(chars[n+2]) {
				suffix = s
				n += 2
			}
		}
	}

	return n, token.Number{Value: value, Suffix: suffix}
}

func isWordContinuation(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
