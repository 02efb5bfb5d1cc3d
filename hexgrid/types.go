package hexgrid

import (
	"fmt"
	"strings"
)

// Position is a bare (x, y) offset coordinate. Start, target and every search
// output refer to cells through a Position; it carries no cell state.
type Position struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// WideRows selects which row parity holds the wider rows of the grid.
//
// Counting rows from one, WideRowsEven makes every even row wide (row indices
// 1, 3, 5, …) and WideRowsOdd makes every odd row wide (row indices 0, 2, 4, …).
type WideRows int

const (
	// WideRowsEven makes rows with an odd index (y%2 == 1) the wide ones.
	WideRowsEven WideRows = iota
	// WideRowsOdd makes rows with an even index (y%2 == 0) the wide ones.
	WideRowsOdd
)

// String returns "even" or "odd".
func (w WideRows) String() string {
	switch w {
	case WideRowsEven:
		return "even"
	case WideRowsOdd:
		return "odd"
	default:
		return fmt.Sprintf("WideRows(%d)", int(w))
	}
}

// Valid reports whether w is one of the declared parities.
func (w WideRows) Valid() bool {
	return w == WideRowsEven || w == WideRowsOdd
}

// ParseWideRows converts "even" or "odd" (any case) into a WideRows value.
func ParseWideRows(s string) (WideRows, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even":
		return WideRowsEven, nil
	case "odd":
		return WideRowsOdd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadWideRows, s)
	}
}

// Direction names one of the six neighbor slots, in the order Neighbors
// returns them.
type Direction int

const (
	Top Direction = iota
	TopRight
	BottomRight
	Bottom
	BottomLeft
	TopLeft
)

var directionNames = [...]string{"top", "top-right", "bottom-right", "bottom", "bottom-left", "top-left"}

func (d Direction) String() string {
	if d < Top || d > TopLeft {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Slot is one of the six neighbor positions around a cell.
// Valid is false when Pos falls outside the grid.
type Slot struct {
	Dir   Direction
	Pos   Position
	Valid bool
}

// Cell is a single grid cell. X and Y are its immutable identity; the rest is
// mutable state.
type Cell struct {
	X, Y int

	// Weight is the cost of entering the cell. Always ≥ 1.
	Weight int
	// Blocked cells are never entered by a search. Weight is irrelevant for them.
	Blocked bool

	// Presentation markers. Written by callers, never read by searches.
	Visited bool
	OnPath  bool
}

// Position returns the cell's coordinates.
func (c Cell) Position() Position {
	return Position{X: c.X, Y: c.Y}
}
