// Package terrain provides the immutable height-map Grid and its
// climbing-rule adjacency.
package terrain

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input, so later changes to rows do not affect the Grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrMalformedGrid if any row length differs or a cell holds an unknown
// elevation or marker, ErrMarkerNotFound if the start or goal is missing and
// ErrMultipleMarkers if either appears twice.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:           w,
		height:          h,
		elevations:      make([]Elevation, 0, w*h),
		minElevation:    Highest,
		neighborOffsets: [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
	var starts, goals []Position
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, y, len(row), w)
		}
		for x, c := range row {
			p := Position{X: x, Y: y}
			if c.Elevation > Highest {
				return nil, fmt.Errorf("%w: elevation %d at %s exceeds %s", ErrMalformedGrid, c.Elevation, p, Highest)
			}
			elev := c.Elevation
			switch c.Marker {
			case NoMarker:
			case StartMarker:
				elev = Lowest
				starts = append(starts, p)
			case GoalMarker:
				elev = Highest
				goals = append(goals, p)
			default:
				return nil, fmt.Errorf("%w: unknown %s at %s", ErrMalformedGrid, c.Marker, p)
			}
			if elev < g.minElevation {
				g.minElevation = elev
			}
			g.elevations = append(g.elevations, elev)
		}
	}

	var err error
	if g.start, err = uniqueMarker(StartMarker, starts); err != nil {
		return nil, err
	}
	if g.goal, err = uniqueMarker(GoalMarker, goals); err != nil {
		return nil, err
	}
	return g, nil
}

// uniqueMarker checks that exactly one position carries m.
func uniqueMarker(m Marker, at []Position) (Position, error) {
	switch len(at) {
	case 0:
		return Position{}, fmt.Errorf("%w: %s", ErrMarkerNotFound, m)
	case 1:
		return at[0], nil
	default:
		return Position{}, fmt.Errorf("%w: %s at %v", ErrMultipleMarkers, m, at)
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the start marker.
func (g *Grid) Start() Position { return g.start }

// Goal returns the position of the goal marker.
func (g *Grid) Goal() Position { return g.goal }

// MinElevation returns the lowest elevation present anywhere in the grid.
// Since the start cell counts as Lowest this is always Lowest for grids
// built by New, but callers should not rely on that.
func (g *Grid) MinElevation() Elevation { return g.minElevation }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// ElevationAt returns the effective elevation at p: the start cell reports
// Lowest and the goal cell Highest.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) ElevationAt(p Position) (Elevation, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s not in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.elevations[g.index(p)], nil
}

// Neighbors returns the orthogonal cells reachable from p in one step:
// in bounds and at most one level higher than p. Order is N, E, S, W.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	here, err := g.ElevationAt(p)
	if err != nil {
		return nil, err
	}
	out := make([]Position, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		q := p.Add(d[0], d[1])
		if !g.InBounds(q) {
			continue
		}
		if here.CanStep(g.elevations[g.index(q)]) {
			out = append(out, q)
		}
	}
	return out, nil
}

// Find returns the position of the start or goal marker.
// Any other marker yields ErrMarkerNotFound.
func (g *Grid) Find(m Marker) (Position, error) {
	switch m {
	case StartMarker:
		return g.start, nil
	case GoalMarker:
		return g.goal, nil
	default:
		return Position{}, fmt.Errorf("%w: %s", ErrMarkerNotFound, m)
	}
}

// CellsAt returns every cell whose effective elevation equals level, in
// row-major order. The start cell is included for Lowest and the goal cell
// for Highest.
// Complexity: O(W×H).
func (g *Grid) CellsAt(level Elevation) []Position {
	var out []Position
	for i, e := range g.elevations {
		if e == level {
			out = append(out, g.position(i))
		}
	}
	return out
}

// String renders the grid in its input form, markers included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{X: x, Y: y}
			switch p {
			case g.start:
				sb.WriteByte('S')
			case g.goal:
				sb.WriteByte('E')
			default:
				sb.WriteString(g.elevations[g.index(p)].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps p to a row-major index: y*width + x.
func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// position converts a row-major index back to a Position.
func (g *Grid) position(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}
