package core

import "errors"

var (
	// ErrInvalidDimensions reports a zero, negative or ragged grid shape.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrIndexOutOfBounds reports a cell coordinate outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrNilSource reports a missing randomness source.
	ErrNilSource = errors.New("nil randomness source")
	// ErrUnknownPattern reports a pattern name that is not registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)
