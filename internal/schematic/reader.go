package schematic

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DefaultMaxLineBytes bounds a single schematic row when no limit is given.
const DefaultMaxLineBytes = 1024 * 1024

// ErrLineTooLong is returned by Read when a row exceeds the line limit.
var ErrLineTooLong = errors.New("schematic row exceeds line limit")

// Read builds a Schematic from newline-separated rows. Line terminators
// ("\n" or "\r\n") are stripped so column indices match the visible grid.
// maxLineBytes <= 0 selects DefaultMaxLineBytes.
func Read(r io.Reader, maxLineBytes int, opts ...Option) (*Schematic, error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)

	var rows []string
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: row %d longer than %d bytes", ErrLineTooLong, len(rows), maxLineBytes)
		}
		return nil, fmt.Errorf("failed to read schematic: %w", err)
	}

	s := New(rows, opts...)
	s.logger.Debug("Schematic loaded",
		zap.Int("rows", len(rows)),
		zap.Int("width", s.width()))
	return s, nil
}
