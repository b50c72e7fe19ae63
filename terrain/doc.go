// Package terrain treats a rectangular height map as a graph whose edges
// follow the climbing rule: a step may go down any distance but up by at
// most one level.
//
// What:
//
//   - Grid wraps a row-major block of elevations a..z with one start (S)
//     and one goal (E) marker.
//   - Markers are normalized on construction: S sits at Lowest, E at
//     Highest, and both positions are tracked apart from elevation data.
//   - Neighbors answers the adjacency query used by package bfs.
//   - CellsAt lists every cell at a level, the seed set of a lowest-ground
//     search.
//
// Why:
//
//   - Hill climbing puzzles: fewest steps from S to E.
//   - Hiking trail planning: best trailhead among all valley cells.
//
// Complexity:
//
//   - New / Parse:  O(W×H) time and memory.
//   - ElevationAt:  O(1).
//   - Neighbors:    O(1) (at most four candidates).
//   - CellsAt:      O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrMalformedGrid:   ragged rows or characters outside {a..z, S, E}.
//   - ErrMarkerNotFound:  start or goal marker missing.
//   - ErrMultipleMarkers: start or goal marker present more than once.
//   - ErrOutOfBounds:     a queried position lies outside the grid.
//
// A Grid is never mutated after New returns, so any number of goroutines
// may query it at once.
package terrain
