// Package bfs provides multi-source breadth-first search over terrain
// positions, returning unweighted shortest distances.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/terrain"
)

// queueItem pairs a position with its BFS distance.
type queueItem struct {
	pos  terrain.Position
	dist int
}

// walker encapsulates mutable BFS state. One walker serves one call.
type walker struct {
	graph    Graph
	opts     Options
	queue    []queueItem
	head     int
	dist     map[terrain.Position]int
	explored int
}

// newWalker validates g, applies opts and seeds the frontier with sources.
// Duplicate sources are enqueued once.
func newWalker(g Graph, sources []terrain.Position, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, len(sources)),
		dist:  make(map[terrain.Position]int, len(sources)),
	}
	for _, s := range sources {
		if _, seen := w.dist[s]; !seen {
			w.enqueue(s, 0)
		}
	}
	return w, nil
}

// Search returns the fewest steps from any of sources to goal.
// An empty source set, or a goal no source can reach, yields a Result with
// Reachable == false and a nil error. A source equal to goal yields 0.
// Returns ErrGraphNil for a nil graph and ErrNeighbors if g fails a query.
func Search(g Graph, sources []terrain.Position, goal terrain.Position, opts ...Option) (Result, error) {
	w, err := newWalker(g, sources, opts)
	if err != nil {
		return Result{}, err
	}
	for w.pending() {
		item := w.dequeue()
		if item.pos == goal {
			return Result{Steps: item.dist, Reachable: true, Explored: w.explored}, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return Result{}, err
		}
	}
	return Result{Explored: w.explored}, nil
}

// Explore walks every cell reachable from sources and returns the distance
// map. Errors match Search.
func Explore(g Graph, sources []terrain.Position, opts ...Option) (*Distances, error) {
	w, err := newWalker(g, sources, opts)
	if err != nil {
		return nil, err
	}
	d := &Distances{}
	for w.pending() {
		item := w.dequeue()
		if item.dist > d.max {
			d.max = item.dist
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}
	d.dist = w.dist
	return d, nil
}

// enqueue records p at distance d, calls OnEnqueue and appends it to the frontier.
func (w *walker) enqueue(p terrain.Position, d int) {
	w.dist[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, dist: d})
}

// pending reports whether the frontier still holds items.
func (w *walker) pending() bool {
	return w.head < len(w.queue)
}

// dequeue pops the earliest item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.explored++
	w.opts.OnDequeue(item.pos, item.dist)
	return item
}

// enqueueNeighbors records every neighbor of item not yet reached at
// item.dist+1. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.pos)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %s: %w", ErrNeighbors, item.pos, err)
	}
	next := item.dist + 1
	for _, nbr := range neighbors {
		// first reach is the shortest reach
		if _, seen := w.dist[nbr]; !seen {
			w.enqueue(nbr, next)
		}
	}
	return nil
}
