// Package hillclimb finds the fewest steps up a height map, where every step
// may climb at most one level.
//
// What is in the box?
//
//	terrain/ — immutable Grid of elevations a..z with start S and goal E
//	bfs/     — multi-source breadth-first search over terrain positions
//	climb/   — the two questions: from S, and from the best lowest cell
//	cmd/hillclimb — command-line entry point (solve, render)
//
// Quick ASCII example:
//
//	S b c      S→b→c is a legal climb (+1 each),
//	a d E      c→E is not (+23), so E is unreachable here.
//
// A Grid is built once and shared read-only by any number of searches.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
