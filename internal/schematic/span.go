package schematic

import "fmt"

// Span is a half-open column interval [ColStart, ColEnd) on a single row.
// Spans are plain values: == compares all three fields and a Span can be
// used as a map key.
type Span struct {
	Row      int
	ColStart int
	ColEnd   int
}

// Overlaps reports whether s and o share at least one column on the same row.
// Spans that only touch (s.ColEnd == o.ColStart) do not overlap.
func (s Span) Overlaps(o Span) bool {
	if s.Row != o.Row {
		return false
	}
	return (s.ColStart <= o.ColStart && o.ColStart < s.ColEnd) ||
		(s.ColStart < o.ColEnd && o.ColEnd <= s.ColEnd) ||
		(o.ColStart <= s.ColStart && s.ColStart < o.ColEnd) ||
		(o.ColStart < s.ColEnd && s.ColEnd <= o.ColEnd)
}

// Len returns the number of columns covered by the span.
func (s Span) Len() int { return s.ColEnd - s.ColStart }

func (s Span) String() string {
	return fmt.Sprintf("Span(%d, [%d,%d])", s.Row, s.ColStart, s.ColEnd)
}
