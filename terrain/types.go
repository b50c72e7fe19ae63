// Package terrain defines elevations, markers, positions and the Grid type.
package terrain

import "fmt"

// Elevation is an ordered height level. Level 0 prints as 'a', level 25 as 'z'.
type Elevation uint8

const (
	// Lowest is the elevation of 'a' and of the start marker.
	Lowest Elevation = 0
	// Highest is the elevation of 'z' and of the goal marker.
	Highest Elevation = 'z' - 'a'
)

// CanStep reports whether a climber standing at e may move onto next:
// next must be at most one level above e.
func (e Elevation) CanStep(next Elevation) bool {
	return int(next) <= int(e)+1
}

// String returns the letter for e.
func (e Elevation) String() string {
	if e > Highest {
		return fmt.Sprintf("Elevation(%d)", uint8(e))
	}
	return string(rune('a' + e))
}

// Marker identifies the start and goal cells. Ordinary cells carry NoMarker.
type Marker uint8

const (
	// NoMarker tags an ordinary cell.
	NoMarker Marker = iota
	// StartMarker tags the unique start cell ('S').
	StartMarker
	// GoalMarker tags the unique goal cell ('E').
	GoalMarker
)

// String returns the input character of the marker, or "none".
func (m Marker) String() string {
	switch m {
	case StartMarker:
		return "S"
	case GoalMarker:
		return "E"
	case NoMarker:
		return "none"
	default:
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
}

// Cell is the tagged value read from one input character: its effective
// elevation plus the marker it carries, if any.
type Cell struct {
	Elevation Elevation
	Marker    Marker
}

// Position is a zero-based (column, row) coordinate. It is comparable and
// can be used as a map key.
type Position struct {
	X, Y int
}

// String formats p as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is an immutable height map. Width and Height define dimensions;
// elevations are stored row-major with markers already normalized, and the
// start and goal positions are kept separately.
// neighborOffsets is precomputed for adjacency lookups: N, E, S, W.
type Grid struct {
	width, height   int
	elevations      []Elevation
	start, goal     Position
	minElevation    Elevation
	neighborOffsets [4][2]int
}
