package octagrid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("octagrid: width and height must be positive")
	// ErrEmptyCellOutOfRange indicates an empty-cell index outside [0, Size()).
	ErrEmptyCellOutOfRange = errors.New("octagrid: empty cell index out of range")
)
