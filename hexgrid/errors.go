package hexgrid

import "errors"

// Sentinel errors for hexgrid operations.
var (
	// ErrBadDimensions indicates a negative row or column count.
	ErrBadDimensions = errors.New("hexgrid: rows and cols must be non-negative")

	// ErrBadWideRows indicates a WideRows value outside {WideRowsEven, WideRowsOdd}.
	ErrBadWideRows = errors.New("hexgrid: unknown wide-row parity")

	// ErrOutOfBounds indicates a coordinate that does not index an existing cell.
	ErrOutOfBounds = errors.New("hexgrid: position out of bounds")

	// ErrInvalidWeight indicates a cell weight below 1.
	ErrInvalidWeight = errors.New("hexgrid: weight must be at least 1")

	// ErrNilGrid indicates a nil *Grid was passed where a grid is required.
	ErrNilGrid = errors.New("hexgrid: grid is nil")
)
