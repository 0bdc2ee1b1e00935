// Package schematic locates part numbers and gears in an engine schematic.
//
// A schematic is a grid of text rows. Digit runs are numbers, '*' marks a
// candidate gear, and anything that is not a letter, digit or '.' is a
// symbol. All sequences are exposed as range-over-func iterators that rescan
// the grid on every call and stop as soon as the consumer breaks.
package schematic

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"go.uber.org/zap"
)

// MarkerChar identifies a candidate gear.
const MarkerChar = '*'

// ErrNotNumber is returned when a span handed to ParseSpanNum does not cover
// a base-10 integer. It signals a bug in the caller's search, not bad input.
var ErrNotNumber = errors.New("span does not cover a number")

// Schematic is a read-only grid of text rows.
type Schematic struct {
	rows   []string
	logger *zap.Logger
}

// Option configures a Schematic.
type Option func(*Schematic)

// WithLogger routes debug output about gear evaluation to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Schematic) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New wraps rows in a Schematic. The slice is not copied and must not be
// modified afterwards.
func New(rows []string, opts ...Option) *Schematic {
	s := &Schematic{
		rows:   rows,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NumRows returns the number of rows in the grid.
func (s *Schematic) NumRows() int { return len(s.rows) }

// Row returns row i, or "" when i is out of range.
func (s *Schematic) Row(i int) string {
	if i < 0 || i >= len(s.rows) {
		return ""
	}
	return s.rows[i]
}

// width is the column bound used for neighborhood clamping. Only the first
// row is consulted; schematics are expected to be rectangular.
func (s *Schematic) width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Markers yields a single-column span for every marker, in row-major order.
func (s *Schematic) Markers() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i, line := range s.rows {
			for j := 0; j < len(line); j++ {
				if line[j] != MarkerChar {
					continue
				}
				if !yield(Span{Row: i, ColStart: j, ColEnd: j + 1}) {
					return
				}
			}
		}
	}
}

// MatchNums yields every maximal digit run on span.Row that overlaps span,
// left to right. Only span.Row is inspected.
func (s *Schematic) MatchNums(span Span) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if span.Row < 0 || span.Row >= len(s.rows) {
			return
		}
		for num := range digitRuns(span.Row, s.rows[span.Row]) {
			if !span.Overlaps(num) {
				continue
			}
			if !yield(num) {
				return
			}
		}
	}
}

// MatchNumsInSquare yields MatchNums(Span{i, colStart, colEnd}) for every
// row i in [rowStart, rowEnd). Each row is scanned independently.
func (s *Schematic) MatchNumsInSquare(rowStart, rowEnd, colStart, colEnd int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i := rowStart; i < rowEnd; i++ {
			for num := range s.MatchNums(Span{Row: i, ColStart: colStart, ColEnd: colEnd}) {
				if !yield(num) {
					return
				}
			}
		}
	}
}

// ParseSpanNum parses the text covered by span as a non-negative base-10
// integer.
func (s *Schematic) ParseSpanNum(span Span) (int, error) {
	if span.Row < 0 || span.Row >= len(s.rows) {
		return 0, fmt.Errorf("%w: %s: row out of range", ErrNotNumber, span)
	}
	line := s.rows[span.Row]
	if span.ColStart < 0 || span.ColEnd > len(line) || span.ColStart >= span.ColEnd {
		return 0, fmt.Errorf("%w: %s: columns out of range", ErrNotNumber, span)
	}
	term := line[span.ColStart:span.ColEnd]
	for i := 0; i < len(term); i++ {
		if !isDigit(term[i]) {
			return 0, fmt.Errorf("%w: %s: %q", ErrNotNumber, span, term)
		}
	}
	n, err := strconv.Atoi(term)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrNotNumber, span, err)
	}
	return n, nil
}

// neighborhood returns the up-to-3x3 block around (row, col), clamped to
// the grid. The column bound comes from width().
func (s *Schematic) neighborhood(row, col int) (rowStart, rowEnd, colStart, colEnd int) {
	rowStart = max(row-1, 0)
	rowEnd = min(row+2, len(s.rows))
	colStart = max(col-1, 0)
	colEnd = min(col+2, s.width())
	return rowStart, rowEnd, colStart, colEnd
}

// adjacentNums collects the numeric spans in the neighborhood of (row, col)
// together with their parsed values.
func (s *Schematic) adjacentNums(row, col int) ([]Span, []int, error) {
	var spans []Span
	var values []int
	for num := range s.MatchNumsInSquare(s.neighborhood(row, col)) {
		n, err := s.ParseSpanNum(num)
		if err != nil {
			return nil, nil, err
		}
		spans = append(spans, num)
		values = append(values, n)
	}
	return spans, values, nil
}

// GearRatio returns the product of the two numbers adjacent to (row, col),
// or 0 when the cell does not touch exactly two numbers.
func (s *Schematic) GearRatio(row, col int) (int, error) {
	spans, values, err := s.adjacentNums(row, col)
	if err != nil {
		return 0, fmt.Errorf("gear ratio at (%d, %d): %w", row, col, err)
	}
	if len(values) != 2 {
		s.logger.Debug("Not a gear",
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Int("adjacent", len(values)))
		return 0, nil
	}
	ratio := values[0] * values[1]
	s.logger.Debug("Gear found",
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Stringers("parts", spans),
		zap.Int("ratio", ratio))
	return ratio, nil
}

// GearRatioSum adds up GearRatio over every marker in the grid.
func (s *Schematic) GearRatioSum() (int, error) {
	total := 0
	for star := range s.Markers() {
		ratio, err := s.GearRatio(star.Row, star.ColStart)
		if err != nil {
			return 0, err
		}
		total += ratio
	}
	return total, nil
}

// Gear is a marker touching exactly two numbers.
type Gear struct {
	Marker Span
	Parts  [2]Span
	Values [2]int
	Ratio  int
}

// Gears yields every marker that qualifies as a gear, in marker order.
// Iteration stops after the first error.
func (s *Schematic) Gears() iter.Seq2[Gear, error] {
	return func(yield func(Gear, error) bool) {
		for star := range s.Markers() {
			spans, values, err := s.adjacentNums(star.Row, star.ColStart)
			if err != nil {
				yield(Gear{Marker: star}, fmt.Errorf("gear at %s: %w", star, err))
				return
			}
			if len(values) != 2 {
				continue
			}
			g := Gear{
				Marker: star,
				Parts:  [2]Span{spans[0], spans[1]},
				Values: [2]int{values[0], values[1]},
				Ratio:  values[0] * values[1],
			}
			if !yield(g, nil) {
				return
			}
		}
	}
}
