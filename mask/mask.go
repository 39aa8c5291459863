// Package mask implements the masker contract of spec §4.4: a Mask is
// a sorted list of non-overlapping spans a caller is allowed to lex,
// used to restrict parsing to prose embedded in comments, Markdown
// bodies, or commit-message subjects.
//
// Grounded on protocompile's internal/interval package: both are
// ordered-span structures built incrementally and walked with a
// range-over-func iterator, generalized here from "interval map
// keyed by endpoint" to the simpler "sorted list of disjoint allowed
// spans" the spec names.
package mask

import (
	"iter"

	"github.com/harperlint/harper/span"
)

// Masker is the contract consumed by MaskParser: given a character
// buffer, produce the regions that are eligible for lexing.
type Masker interface {
	CreateMask(chars []rune) Mask
}

// Mask is a sorted list of non-overlapping allowed spans (§4.4).
type Mask struct {
	spans []span.Span
}

// New returns an empty Mask.
func New() Mask {
	return Mask{}
}

// PushAllowed appends s to the mask, coalescing it with the last
// entry if the two are contiguous (s.Start == last.End), per §4.4.
func (m *Mask) PushAllowed(s span.Span) {
	if s.IsEmpty() {
		return
	}
	if n := len(m.spans); n > 0 && m.spans[n-1].End == s.Start {
		m.spans[n-1] = m.spans[n-1].WithEnd(s.End)
		return
	}
	m.spans = append(m.spans, s)
}

// Spans returns the mask's allowed spans in order.
func (m Mask) Spans() []span.Span {
	return m.spans
}

// Len returns the number of allowed spans.
func (m Mask) Len() int {
	return len(m.spans)
}

// IterAllowed yields each allowed span paired with its slice of
// source, per §4.4's `iter_allowed(source)`.
func (m Mask) IterAllowed(source []rune) iter.Seq2[span.Span, []rune] {
	return func(yield func(span.Span, []rune) bool) {
		for _, s := range m.spans {
			if !yield(s, s.Content(source)) {
				return
			}
		}
	}
}

// MergeWhitespaceSep repeatedly coalesces consecutive allowed spans
// whose intervening characters in source are entirely whitespace or
// newlines, per §4.4. It mutates the mask in place.
func (m *Mask) MergeWhitespaceSep(source []rune) {
	if len(m.spans) == 0 {
		return
	}

	merged := m.spans[:1]
	for _, next := range m.spans[1:] {
		last := merged[len(merged)-1]
		if isAllWhitespace(source[last.End:next.Start]) {
			merged[len(merged)-1] = last.WithEnd(next.End)
			continue
		}
		merged = append(merged, next)
	}
	m.spans = merged
}

func isAllWhitespace(chars []rune) bool {
	for _, c := range chars {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}
