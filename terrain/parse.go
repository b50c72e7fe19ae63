package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseCell maps one input character to its Cell:
// 'a'..'z' are ordinary levels, 'S' is the start marker at Lowest and
// 'E' is the goal marker at Highest. Anything else is ErrMalformedGrid.
func ParseCell(c byte) (Cell, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return Cell{Elevation: Elevation(c - 'a')}, nil
	case c == 'S':
		return Cell{Elevation: Lowest, Marker: StartMarker}, nil
	case c == 'E':
		return Cell{Elevation: Highest, Marker: GoalMarker}, nil
	default:
		return Cell{}, fmt.Errorf("%w: unexpected character %q", ErrMalformedGrid, c)
	}
}

// FromLines builds a Grid from text rows, one row per string.
// Trailing blank lines are ignored and a trailing '\r' is trimmed from each row.
func FromLines(lines []string) (*Grid, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			c, err := ParseCell(line[x])
			if err != nil {
				return nil, fmt.Errorf("%w (row %d, column %d)", err, y, x)
			}
			row[x] = c
		}
		rows[y] = row
	}
	return New(rows)
}

// Parse reads a Grid from r, one row per line.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: reading input: %w", err)
	}
	return FromLines(lines)
}

// MustParse is like Parse on a string but panics on error.
// It is intended for tests and examples with literal grids.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}
