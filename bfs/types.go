// Package bfs provides tunable options, results and error definitions
// for breadth-first search over terrain positions.
package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnreachable is returned by Result.Distance when no source reaches the goal.
	ErrUnreachable = errors.New("bfs: goal unreachable")
)

// Graph is the adjacency query the search consumes. *terrain.Grid implements it.
type Graph interface {
	Neighbors(p terrain.Position) ([]terrain.Position, error)
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a search.
type Options struct {
	// OnEnqueue is called when a cell is first reached, with its distance.
	OnEnqueue func(p terrain.Position, dist int)

	// OnDequeue is called immediately before a cell is expanded.
	OnDequeue func(p terrain.Position, dist int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(terrain.Position, int) {},
		OnDequeue: func(terrain.Position, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p terrain.Position, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p terrain.Position, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result is the outcome of Search.
//   - Steps: fewest steps from any source to the goal; meaningful only if Reachable.
//   - Reachable: false when the frontier emptied without reaching the goal.
//   - Explored: number of cells expanded before the search stopped.
type Result struct {
	Steps     int
	Reachable bool
	Explored  int
}

// Distance returns Steps, or ErrUnreachable if the goal was not reached.
func (r Result) Distance() (int, error) {
	if !r.Reachable {
		return 0, ErrUnreachable
	}
	return r.Steps, nil
}

// String renders the step count, or "unreachable".
func (r Result) String() string {
	if !r.Reachable {
		return "unreachable"
	}
	return fmt.Sprintf("%d", r.Steps)
}

// Distances is the complete distance map produced by Explore.
type Distances struct {
	dist map[terrain.Position]int
	max  int
}

// Get returns the distance to p and whether p was reached.
func (d *Distances) Get(p terrain.Position) (int, bool) {
	n, ok := d.dist[p]
	return n, ok
}

// Len returns the number of reached cells, sources included.
func (d *Distances) Len() int { return len(d.dist) }

// Max returns the largest recorded distance, or 0 if nothing was reached.
func (d *Distances) Max() int { return d.max }

// Positions returns every reached cell ordered by distance, then row, then column.
func (d *Distances) Positions() []terrain.Position {
	out := make([]terrain.Position, 0, len(d.dist))
	for p := range d.dist {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if d.dist[a] != d.dist[b] {
			return d.dist[a] < d.dist[b]
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
