package lex

import "github.com/harperlint/harper/token"

// tabWidth is how much a tab counts for in a Space's Count, per §4.1.
const tabWidth = 2

// lexSpace consumes a run of ' ' and '\t', collapsing it into a
// single Space token whose Count treats each tab as tabWidth.
func lexSpace(chars []rune) (int, token.TokenKind) {
	if len(chars) == 0 || (chars[0] != ' ' && chars[0] != '\t') {
		return 0, nil
	}

	n := 0
	count := 0
	for n < len(chars) {
		switch chars[n] {
		case ' ':
			count++
		case '\t':
			count += tabWidth
		default:
			return n, token.Space{Count: count}
		}
		n++
	}
	return n, token.Space{Count: count}
}

// lexNewline consumes a run of '\n', one per Count.
func lexNewline(chars []rune) (int, token.TokenKind) {
	if len(chars) == 0 || chars[0] != '\n' {
		return 0, nil
	}

	n := 0
	for n < len(chars) && chars[n] == '\n' {
		n++
	}
	return n, token.Newline{Count: n}
}
