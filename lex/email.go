package lex

import (
	"unicode"

	"github.com/harperlint/harper/token"
)

// lexEmail recognizes an email address (§4.1). It first finds the
// widest run of non-whitespace characters containing an '@', then
// locates the *last* '@' in that run (so a local part may itself
// contain '@' only if quoted, which this scan conservatively treats
// as a hard stop), validates the local part, and validates the host
// using the URL lexer's host-label rule -- retrying with
// successively shorter candidate domains if the full one fails to
// validate, down to length zero.
func lexEmail(chars []rune) (int, token.TokenKind) {
	runLen := 0
	for runLen < len(chars) && !unicode.IsSpace(chars[runLen]) {
		runLen++
	}
	run := chars[:runLen]

	at := lastIndexRune(run, '@')
	if at <= 0 || at == len(run)-1 {
		return 0, nil
	}

	local := run[:at]
	if !validLocalPart(local) {
		return 0, nil
	}

	domain := run[at+1:]
	for len(domain) > 0 {
		if hostLen := scanHost(domain); hostLen == len(domain) {
			return at + 1 + hostLen, token.EmailAddress{}
		}
		domain = domain[:len(domain)-1]
	}
	return 0, nil
}

func lastIndexRune(chars []rune, r rune) int {
	for i := len(chars) - 1; i >= 0; i-- {
		if chars[i] == r {
			return i
		}
	}
	return -1
}

// validLocalPart checks length 1..=64, no leading/trailing/adjacent
// dots, and an allowed unquoted character set. A leading and trailing
// '"' is accepted as a quoted local part without further validation
// of its interior, matching the leniency of §4.1's "quoted or
// unquoted" allowance.
func validLocalPart(local []rune) bool {
	if len(local) == 0 || len(local) > 64 {
		return false
	}
	if local[0] == '"' && local[len(local)-1] == '"' && len(local) >= 2 {
		return true
	}
	if local[0] == '.' || local[len(local)-1] == '.' {
		return false
	}
	prevDot := false
	for _, r := range local {
		if r == '.' {
			if prevDot {
				return false
			}
			prevDot = true
			continue
		}
		prevDot = false
		if !isLocalPartChar(r) {
			return false
		}
	}
	return true
}

func isLocalPartChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', '_', '%', '+', '-':
		return true
	default:
		return false
	}
}
