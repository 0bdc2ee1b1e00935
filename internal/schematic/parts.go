package schematic

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// PartNumbers yields every number that touches a symbol, including
// diagonally, in row-major order. Unlike gear lookups, each neighboring row
// is clamped to its own length.
func (s *Schematic) PartNumbers() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for i, line := range s.rows {
			for num := range digitRuns(i, line) {
				if !s.touchesSymbol(num) {
					continue
				}
				if !yield(num) {
					return
				}
			}
		}
	}
}

// touchesSymbol scans the ring of cells around num for a symbol.
func (s *Schematic) touchesSymbol(num Span) bool {
	for i := max(num.Row-1, 0); i < min(num.Row+2, len(s.rows)); i++ {
		line := s.rows[i]
		for j := max(num.ColStart-1, 0); j < min(num.ColEnd+1, len(line)); j++ {
			if i == num.Row && j >= num.ColStart && j < num.ColEnd {
				continue
			}
			if isSymbol(line[j]) {
				return true
			}
		}
	}
	return false
}

// PartNumberSum adds up every number yielded by PartNumbers.
func (s *Schematic) PartNumberSum() (int, error) {
	total, count := 0, 0
	for num := range s.PartNumbers() {
		n, err := s.ParseSpanNum(num)
		if err != nil {
			return 0, fmt.Errorf("part number: %w", err)
		}
		total += n
		count++
	}
	s.logger.Debug("Part numbers summed", zap.Int("count", count), zap.Int("total", total))
	return total, nil
}
