// Package span provides half-open character index ranges over a
// [] rune buffer, along with the length-preserving and
// offset-shifting mutations the rest of the engine needs.
//
// Spans are measured in character (rune) indices into a buffer, never
// bytes: the lexer, document, and rule packages all agree on this
// unit so that spans compose without translation.
package span

import "fmt"

// Span is a half-open range [Start, End) of character indices into
// some buffer. The zero Span is empty at index 0.
//
// Invariant: Start <= End. Whether End <= len(buffer) holds is the
// caller's responsibility; Span itself does not hold a reference to
// any buffer.
type Span struct {
	Start, End int
}

// New constructs a Span, panicking if start > end.
func New(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("span: start %d > end %d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns End - Start.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span contains no characters.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether idx lies within [Start, End).
func (s Span) Contains(idx int) bool {
	return idx >= s.Start && idx < s.End
}

// Overlaps reports whether s and other share at least one index.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// ContainsSpan reports whether other lies entirely within s.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Content extracts the characters covered by this span from chars.
//
// Panics if the span does not fit within chars; this is a programming
// error, per §7's runtime-contract taxonomy, not a user-facing one.
func (s Span) Content(chars []rune) []rune {
	if s.Start < 0 || s.End > len(chars) {
		panic(fmt.Sprintf("span: %v out of range for buffer of length %d", s, len(chars)))
	}
	return chars[s.Start:s.End]
}

// String returns a debug-friendly representation, as
// protocompile's source.Span does for its own spans.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// WithStart returns a copy of s with a new Start, keeping End fixed.
func (s Span) WithStart(start int) Span {
	return New(start, s.End)
}

// WithEnd returns a copy of s with a new End, keeping Start fixed.
func (s Span) WithEnd(end int) Span {
	return New(s.Start, end)
}

// Shift translates both endpoints by delta. Used when a span produced
// relative to a sub-slice (e.g. the allowed region inside a Mask) is
// re-expressed in terms of the full source buffer.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// Grow returns the smallest span containing both s and other. Both
// spans are assumed to index into the same buffer.
func Grow(s, other Span) Span {
	if other.IsEmpty() && other.Start == 0 && other.End == 0 {
		return s
	}
	if s.IsEmpty() && s.Start == 0 && s.End == 0 {
		return other
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Join returns the smallest span containing every span in spans. The
// zero Span is returned for an empty slice, mirroring
// protocompile's source.Join for an all-zero input.
func Join(spans ...Span) Span {
	if len(spans) == 0 {
		return Span{}
	}
	joined := spans[0]
	for _, s := range spans[1:] {
		joined = Grow(joined, s)
	}
	return joined
}
