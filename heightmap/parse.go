package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// Parse reads a grid in the text format: one line per row, 'a'..'z' for
// elevations 0..25, 'S' for the source (elevation 0) and 'E' for the target
// (elevation 25). Carriage returns and trailing blank lines are ignored.
//
// Every returned error wraps ErrParse together with the concrete cause
// (ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMissingMarker or
// ErrDuplicateMarker), so both can be matched with errors.Is.
// Complexity: O(W×H).
func Parse(r io.Reader) (*GridMap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyGrid)
	}

	width := len(lines[0])
	elevations := make([][]int, len(lines))
	var source, target *Position
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: %w: line %d has %d cells, want %d",
				ErrParse, ErrNonRectangular, y+1, len(line), width)
		}
		row := make([]int, width)
		for x := 0; x < width; x++ {
			c := line[x]
			p := Position{X: x, Y: y}
			switch {
			case c >= 'a' && c <= 'z':
				row[x] = int(c - 'a')
			case c == SourceMarker:
				if source != nil {
					return nil, fmt.Errorf("%w: %w: %q at %v and %v", ErrParse, ErrDuplicateMarker, c, *source, p)
				}
				source = &p
				row[x] = MinElevation
			case c == TargetMarker:
				if target != nil {
					return nil, fmt.Errorf("%w: %w: %q at %v and %v", ErrParse, ErrDuplicateMarker, c, *target, p)
				}
				target = &p
				row[x] = MaxElevation
			default:
				return nil, fmt.Errorf("%w: %w: %q at line %d column %d", ErrParse, ErrInvalidCell, c, y+1, x+1)
			}
		}
		elevations[y] = row
	}
	if source == nil {
		return nil, fmt.Errorf("%w: %w: no %q cell", ErrParse, ErrMissingMarker, SourceMarker)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %w: no %q cell", ErrParse, ErrMissingMarker, TargetMarker)
	}

	g, err := New(elevations, *source, *target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*GridMap, error) {
	return Parse(strings.NewReader(s))
}
