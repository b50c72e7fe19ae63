// Package bfs provides a multi-source breadth-first search over any graph of
// terrain positions, returning the fewest steps from a set of sources to a goal.
//
// What
//
//   - Seeds the frontier with every source at distance 0 and expands cells in
//     non-decreasing distance, first in first out.
//   - A cell's first recorded distance is final: it is never enqueued twice.
//   - Search stops as soon as the goal leaves the frontier and returns a
//     Result. An exhausted frontier yields Result.Reachable == false, which is
//     a normal answer rather than an error.
//   - Explore runs the same walk to exhaustion and returns the full distance map.
//   - Supports observation hooks:
//   - OnEnqueue (when a cell is first reached)
//   - OnDequeue (immediately before expanding a cell)
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Running one walk from all sources at once gives the same answer as the
//     minimum over one walk per source, while sharing all frontier work.
//
// Determinism
//
//	Distances do not depend on the order Graph.Neighbors returns cells in;
//	only the visit order within one layer does.
//
// Complexity (V = cells, E = legal steps)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (frontier and distance map)
//
// Usage
//
//	g, _ := terrain.Parse(r)
//	res, err := bfs.Search(g, []terrain.Position{g.Start()}, g.Goal())
//	if err != nil {
//	    // ErrGraphNil or ErrNeighbors
//	}
//	steps, err := res.Distance() // ErrUnreachable when no path exists
//
// Errors
//
//   - ErrGraphNil    if the graph is nil.
//   - ErrNeighbors   if Graph.Neighbors fails, e.g. for an out-of-bounds source.
//   - ErrUnreachable from Result.Distance when the goal was not reached.
//
// The search has no cancellation or step budget: the grid is finite and an
// unreachable goal is detected when the frontier runs dry. Every call owns its
// frontier and distance map, so concurrent searches may share one Graph.
package bfs
