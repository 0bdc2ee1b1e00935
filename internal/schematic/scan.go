package schematic

import "iter"

// digitRuns yields a span for every maximal run of ASCII digits in line.
// It is a two-state scanner: outside a run, or inside one that began at
// start.
func digitRuns(row int, line string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start := -1
		for j := 0; j < len(line); j++ {
			switch {
			case isDigit(line[j]) && start < 0:
				start = j
			case !isDigit(line[j]) && start >= 0:
				if !yield(Span{Row: row, ColStart: start, ColEnd: j}) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(Span{Row: row, ColStart: start, ColEnd: len(line)})
		}
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isSymbol reports whether c counts as a schematic symbol: anything that is
// not an ASCII letter, digit or '.'.
func isSymbol(c byte) bool {
	switch {
	case isDigit(c), c == '.':
		return false
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return false
	}
	return true
}
