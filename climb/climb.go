// Package climb answers the two hill-climbing questions over a terrain.Grid:
// the fewest steps from the start marker to the goal, and the fewest steps
// from the best cell at the lowest elevation.
//
// Both answers come from package bfs. The lowest-ground question is a single
// walk seeded with every lowest cell at once; PerStartMinimum keeps the
// one-walk-per-trailhead formulation around as a cross-check.
package climb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/terrain"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("climb: unknown mode")

// Mode selects which question Solve answers.
type Mode int

const (
	// ModeStart searches from the start marker only.
	ModeStart Mode = iota + 1
	// ModeLowest searches from every cell at the grid's minimum elevation.
	ModeLowest
	// ModeBoth answers both questions concurrently.
	ModeBoth
)

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeLowest:
		return "lowest"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "start", "lowest" or "both" (case-insensitive) to a Mode.
// The empty string selects ModeBoth.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return ModeStart, nil
	case "lowest":
		return ModeLowest, nil
	case "both", "":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q (want start, lowest or both)", ErrUnknownMode, s)
	}
}

// Sources returns the seed cells for a single-question mode.
func (m Mode) Sources(g *terrain.Grid) ([]terrain.Position, error) {
	switch m {
	case ModeStart:
		return []terrain.Position{g.Start()}, nil
	case ModeLowest:
		return g.CellsAt(g.MinElevation()), nil
	default:
		return nil, fmt.Errorf("%w: %s has no single source set", ErrUnknownMode, m)
	}
}

// FromStart returns the fewest steps from the start marker to the goal.
func FromStart(g *terrain.Grid, opts ...bfs.Option) (bfs.Result, error) {
	return bfs.Search(g, []terrain.Position{g.Start()}, g.Goal(), opts...)
}

// FromLowest returns the fewest steps to the goal from any cell at the
// grid's minimum elevation, using one walk seeded with all of them.
func FromLowest(g *terrain.Grid, opts ...bfs.Option) (bfs.Result, error) {
	return bfs.Search(g, g.CellsAt(g.MinElevation()), g.Goal(), opts...)
}

// PerStartMinimum answers the same question as FromLowest by running one
// walk per lowest cell and keeping the best. It costs O(k·(V+E)) for k
// trailheads; Explored sums the work of every walk.
func PerStartMinimum(g *terrain.Grid) (bfs.Result, error) {
	var best bfs.Result
	explored := 0
	for _, src := range g.CellsAt(g.MinElevation()) {
		r, err := bfs.Search(g, []terrain.Position{src}, g.Goal())
		if err != nil {
			return bfs.Result{}, err
		}
		explored += r.Explored
		if r.Reachable && (!best.Reachable || r.Steps < best.Steps) {
			best = r
		}
	}
	best.Explored = explored
	return best, nil
}
