package lex

import "github.com/harperlint/harper/token"

// punctVariants maps a punctuation rune to its variant. Quotes map
// several distinct runes ('"', '“', '”') onto the single
// PunctQuote variant per §4.1; apostrophes likewise collapse
// '\'' and '’' onto PunctApostrophe.
var punctVariants = map[rune]token.PunctVariant{
	'"':      token.PunctQuote,
	'“': token.PunctQuote, // “
	'”': token.PunctQuote, // ”
	'\'':     token.PunctApostrophe,
	'’': token.PunctApostrophe, // ’
	'.':      token.PunctPeriod,
	'!':      token.PunctBang,
	'?':      token.PunctQuestion,
	',':      token.PunctComma,
	':':      token.PunctColon,
	';':      token.PunctSemicolon,
	'-':      token.PunctHyphen,
	'–': token.PunctEnDash,
	'—': token.PunctEmDash,
	'…': token.PunctEllipsis,
	'(':      token.PunctOpenParen,
	')':      token.PunctCloseParen,
	'[':      token.PunctOpenBracket,
	']':      token.PunctCloseBracket,
	'{':      token.PunctOpenBrace,
	'}':      token.PunctCloseBrace,
	'#':      token.PunctHash,
	'@':      token.PunctAt,
	'&':      token.PunctAmpersand,
	'/':      token.PunctSlash,
	'\\':     token.PunctBackslash,
}

// lexPunctuation recognizes a single punctuation character. Runes not
// present in punctVariants but classified as punctuation by the
// caller's wider definition still fall through to PunctOther so that
// e.g. '%', '$', '*' are still Punctuation tokens rather than
// Unlintable ones.
func lexPunctuation(chars []rune) (int, token.TokenKind) {
	if len(chars) == 0 {
		return 0, nil
	}
	r := chars[0]
	// A run of two or more periods is one ellipsis token of whatever
	// length, which EllipsisLength then checks for exactly three.
	if r == '.' {
		n := 1
		for n < len(chars) && chars[n] == '.' {
			n++
		}
		if n > 1 {
			return n, token.Punctuation{Variant: token.PunctEllipsis, Twin: token.NoTwin}
		}
	}
	if variant, ok := punctVariants[r]; ok {
		return 1, token.Punctuation{Variant: variant, Twin: token.NoTwin}
	}
	if isGenericPunct(r) {
		return 1, token.Punctuation{Variant: token.PunctOther, Twin: token.NoTwin}
	}
	return 0, nil
}

// isGenericPunct reports whether r is ASCII punctuation not already
// covered by a named variant.
func isGenericPunct(r rune) bool {
	switch r {
	case '%', '$', '*', '+', '=', '<', '>', '^', '~', '`', '|', '_':
		return true
	default:
		return false
	}
}
