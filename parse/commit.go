package parse

import "github.com/harperlint/harper/token"

// CommitMessage parses a Git commit message: it locates the first '#'
// (the start of the comment block the editor appends) and runs
// Markdown on everything before it, per §4.4.
type CommitMessage struct{}

func (CommitMessage) Parse(chars []rune) []token.Token {
	cut := len(chars)
	for i, c := range chars {
		if c == '#' {
			cut = i
			break
		}
	}
	return Markdown{}.Parse(chars[:cut])
}
