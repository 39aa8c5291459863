package parse

import (
	"sort"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/harperlint/harper/lex"
	"github.com/harperlint/harper/span"
	"github.com/harperlint/harper/token"
)

// markdownEngine drives a CommonMark event stream with the GFM
// extension bundle (tables, strikethrough, autolinks) enabled, so the
// "table-cell" and "strikethrough" containing tags named in §4.4 have
// a concrete node kind to match against.
var markdownEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown drives the CommonMark event stream over chars, per §4.4:
// text runs inside prose-bearing containers (paragraph, link, heading,
// list item, table cell, emphasis/strong, strikethrough) are lexed
// with PlainEnglish and their spans shifted back into chars'
// coordinates; code spans and code blocks become single Unlintable
// tokens; soft/hard line breaks become Newline(1); paragraph/heading/
// item/table-cell ends and list starts become Newline(2).
type Markdown struct{}

func (Markdown) Parse(chars []rune) []token.Token {
	if len(chars) == 0 {
		return nil
	}

	source := []byte(string(chars))
	offsets := runeByteOffsets(chars, source)

	root := markdownEngine.Parser().Parse(gmtext.NewReader(source))

	var out []token.Token
	containerDepth := 0

	emitNewline2At := func(byteOffset int) {
		c := byteToChar(offsets, byteOffset)
		out = append(out, token.New(span.New(c, c), token.Newline{Count: 2}))
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch nt := n.(type) {
		case *ast.Document:
			return ast.WalkContinue, nil

		case *ast.List:
			if entering {
				if start, _, ok := nodeTextByteRange(n); ok {
					emitNewline2At(start)
				}
			}
			return ast.WalkContinue, nil

		case *ast.Paragraph:
			return walkContainer(&containerDepth, entering, n, emitNewline2At)
		case *ast.Heading:
			return walkContainer(&containerDepth, entering, n, emitNewline2At)
		case *ast.ListItem:
			return walkContainer(&containerDepth, entering, n, emitNewline2At)
		case *extast.TableCell:
			return walkContainer(&containerDepth, entering, n, emitNewline2At)

		case *ast.Link:
			containerDepth = bumpDepth(containerDepth, entering)
			return ast.WalkContinue, nil
		case *ast.Emphasis:
			containerDepth = bumpDepth(containerDepth, entering)
			return ast.WalkContinue, nil
		case *extast.Strikethrough:
			containerDepth = bumpDepth(containerDepth, entering)
			return ast.WalkContinue, nil

		case *ast.CodeSpan:
			if entering {
				if start, end, ok := nodeTextByteRange(n); ok {
					cs, ce := byteToChar(offsets, start), byteToChar(offsets, end)
					out = append(out, token.New(span.New(cs, ce), token.Unlintable{}))
				}
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			if entering {
				emitCodeBlock(&out, offsets, nt.Lines())
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if entering {
				emitCodeBlock(&out, offsets, nt.Lines())
			}
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			emitText(&out, chars, offsets, nt, containerDepth)
			return ast.WalkContinue, nil

		default:
			return ast.WalkContinue, nil
		}
	})

	sortTokensByStart(out)
	return dropTrailingNewline(out, chars)
}

func walkContainer(depth *int, entering bool, n ast.Node, emitNewline2At func(int)) (ast.WalkStatus, error) {
	if entering {
		*depth++
	} else {
		*depth--
		if _, end, ok := nodeTextByteRange(n); ok {
			emitNewline2At(end)
		}
	}
	return ast.WalkContinue, nil
}

func bumpDepth(depth int, entering bool) int {
	if entering {
		return depth + 1
	}
	return depth - 1
}

func emitText(out *[]token.Token, chars []rune, offsets []int, t *ast.Text, containerDepth int) {
	if containerDepth <= 0 {
		return
	}
	seg := t.Segment
	startChar := byteToChar(offsets, seg.Start)
	endChar := byteToChar(offsets, seg.Stop)
	if endChar > startChar {
		for _, tok := range lex.LexToEnd(chars[startChar:endChar]) {
			*out = append(*out, shiftToken(tok, startChar))
		}
	}
	if t.HardLineBreak() || t.SoftLineBreak() {
		*out = append(*out, token.New(span.New(endChar, endChar), token.Newline{Count: 1}))
	}
}

func emitCodeBlock(out *[]token.Token, offsets []int, lines *gmtext.Segments) {
	if lines == nil || lines.Len() == 0 {
		return
	}
	start := lines.At(0).Start
	end := lines.At(lines.Len() - 1).Stop
	cs, ce := byteToChar(offsets, start), byteToChar(offsets, end)
	*out = append(*out, token.New(span.New(cs, ce), token.Unlintable{}))
}

// nodeTextByteRange walks n's descendants collecting the byte range
// spanned by every ast.Text leaf, giving a usable start/end byte
// offset for container nodes that have no segment of their own.
func nodeTextByteRange(n ast.Node) (start, end int, ok bool) {
	first := true
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, isText := c.(*ast.Text); isText {
			if first {
				start, end, first = t.Segment.Start, t.Segment.Stop, false
				return ast.WalkContinue, nil
			}
			if t.Segment.Start < start {
				start = t.Segment.Start
			}
			if t.Segment.Stop > end {
				end = t.Segment.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	return start, end, !first
}

// runeByteOffsets builds a lookup table mapping rune index -> byte
// offset in source, standing in for the spec's stateful
// "traversed_bytes/traversed_chars" running pair with an equivalent
// precomputed table searched by byteToChar (see DESIGN.md).
func runeByteOffsets(chars []rune, source []byte) []int {
	offsets := make([]int, len(chars)+1)
	b := 0
	for i, r := range chars {
		offsets[i] = b
		b += utf8.RuneLen(r)
	}
	offsets[len(chars)] = len(source)
	return offsets
}

func byteToChar(offsets []int, b int) int {
	return sort.Search(len(offsets), func(i int) bool { return offsets[i] >= b })
}

func sortTokensByStart(toks []token.Token) {
	sort.SliceStable(toks, func(i, j int) bool {
		if toks[i].Span.Start != toks[j].Span.Start {
			return toks[i].Span.Start < toks[j].Span.Start
		}
		return toks[i].Span.End < toks[j].Span.End
	})
}

// dropTrailingNewline removes a trailing Newline token if chars does
// not itself end in '\n', per §4.4.
func dropTrailingNewline(toks []token.Token, chars []rune) []token.Token {
	if len(chars) > 0 && chars[len(chars)-1] == '\n' {
		return toks
	}
	if n := len(toks); n > 0 {
		if _, ok := toks[n-1].Kind.(token.Newline); ok {
			return toks[:n-1]
		}
	}
	return toks
}
