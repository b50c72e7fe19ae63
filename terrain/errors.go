package terrain

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrMalformedGrid indicates rows of differing lengths or an unknown cell character.
	ErrMalformedGrid = errors.New("terrain: malformed grid")
	// ErrMarkerNotFound indicates the start or goal marker is absent.
	ErrMarkerNotFound = errors.New("terrain: marker not found")
	// ErrMultipleMarkers indicates the start or goal marker appears more than once.
	ErrMultipleMarkers = errors.New("terrain: marker appears more than once")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("terrain: position out of bounds")
)
