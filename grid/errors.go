package grid

import "errors"

var (
	// ErrIndexOutOfRange indicates a tile index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("grid: tile index out of range")
	// ErrUnknownDirection indicates an unrecognised direction name.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
