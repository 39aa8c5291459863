package lex

import (
	"unicode"

	"github.com/harperlint/harper/token"
)

// lexURL recognizes an RFC-1738-style URL (§4.1): scheme "://"
// optional userinfo, a dot-separated host, an optional port, and a
// path. It never consumes past the first whitespace character.
func lexURL(chars []rune) (int, token.TokenKind) {
	n := scanScheme(chars)
	if n == 0 || !hasPrefixAt(chars, n, "://") {
		return 0, nil
	}
	n += len("://")

	// Optional userinfo: user[:password]@
	if at := findUserinfoEnd(chars, n); at > n {
		n = at
	}

	hostLen := scanHost(chars[n:])
	if hostLen == 0 {
		return 0, nil
	}
	n += hostLen

	if n < len(chars) && chars[n] == ':' {
		portLen := 1
		for n+portLen < len(chars) && unicode.IsDigit(chars[n+portLen]) {
			portLen++
		}
		if portLen > 1 {
			n += portLen
		}
	}

	if n < len(chars) && chars[n] == '/' {
		n += scanPath(chars[n:])
	}

	return n, token.URL{}
}

// scanScheme consumes [A-Za-z0-9.+-]+ at the start of chars.
func scanScheme(chars []rune) int {
	n := 0
	for n < len(chars) && isSchemeChar(chars[n]) {
		n++
	}
	return n
}

func isSchemeChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '+' || r == '-'
}

func hasPrefixAt(chars []rune, at int, prefix string) bool {
	runes := []rune(prefix)
	if at+len(runes) > len(chars) {
		return false
	}
	for i, r := range runes {
		if chars[at+i] != r {
			return false
		}
	}
	return true
}

// findUserinfoEnd scans forward from n looking for user[:password]@,
// stopping at the first whitespace or '/'. Returns the index just
// past '@', or n if no userinfo is present.
func findUserinfoEnd(chars []rune, n int) int {
	i := n
	for i < len(chars) {
		r := chars[i]
		if unicode.IsSpace(r) || r == '/' {
			return n
		}
		if r == '@' {
			return i + 1
		}
		i++
	}
	return n
}

// scanHost consumes dot-separated labels of [A-Za-z0-9-], each at
// most 63 characters, the whole host at most 253.
func scanHost(chars []rune) int {
	n := 0
	total := 0
	for {
		labelStart := n
		for n < len(chars) && isHostLabelChar(chars[n]) {
			n++
		}
		labelLen := n - labelStart
		if labelLen == 0 || labelLen > 63 {
			return labelStart
		}
		total += labelLen
		if total > 253 {
			return labelStart
		}
		if n < len(chars) && chars[n] == '.' {
			n++
			total++
			continue
		}
		break
	}
	return n
}

func isHostLabelChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
}

// scanPath consumes a path of reserved/unreserved/escape-sequence
// characters, stopping at the first whitespace.
func scanPath(chars []rune) int {
	n := 0
	for n < len(chars) && !unicode.IsSpace(chars[n]) {
		n++
	}
	return n
}
