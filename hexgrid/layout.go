package hexgrid

// Layout is the pure geometry of a grid: how many rows, how many columns and
// which rows are wide. It holds no cell state, so searches can snapshot a grid
// into their own storage and keep using the same adjacency.
type Layout struct {
	Rows, Cols int
	Wide       WideRows
}

// NarrowLen returns the width of a narrow row: floor(Cols/2).
func (l Layout) NarrowLen() int {
	return l.Cols / 2
}

// WideLen returns the width of a wide row: ceil(Cols/2).
func (l Layout) WideLen() int {
	return (l.Cols + 1) / 2
}

// IsWideRow reports whether row y is a wide row under l.Wide.
func (l Layout) IsWideRow(y int) bool {
	odd := y&1 == 1
	if l.Wide == WideRowsEven {
		return odd
	}
	return !odd
}

// RowLen returns the number of cells in row y, or 0 when y is outside the grid.
func (l Layout) RowLen(y int) int {
	if y < 0 || y >= l.Rows {
		return 0
	}
	if l.IsWideRow(y) {
		return l.WideLen()
	}
	return l.NarrowLen()
}

// InBounds reports whether p indexes an existing cell.
// Complexity: O(1).
func (l Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.RowLen(p.Y)
}

// rowStart returns the dense index of the first cell of row y.
func (l Layout) rowStart(y int) int {
	var wide int
	if l.Wide == WideRowsEven {
		wide = y / 2 // odd rows in [0,y)
	} else {
		wide = (y + 1) / 2 // even rows in [0,y)
	}
	return wide*l.WideLen() + (y-wide)*l.NarrowLen()
}

// Size returns the total number of cells.
func (l Layout) Size() int {
	if l.Rows <= 0 {
		return 0
	}
	return l.rowStart(l.Rows)
}

// Index maps p to a dense row-major index in [0, Size()), or -1 when p is out
// of bounds. Row lengths alternate, so the index is not y*width+x.
// Complexity: O(1).
func (l Layout) Index(p Position) int {
	if !l.InBounds(p) {
		return -1
	}
	return l.rowStart(p.Y) + p.X
}

// Neighbors returns the six neighbor slots of p in the order Top, TopRight,
// BottomRight, Bottom, BottomLeft, TopLeft. A slot is invalid when its
// coordinate has a negative index or lies beyond its row's length.
//
// Vertical neighbors are two rows away because adjacent rows are offset by
// half a cell. The diagonal neighbors depend on whether p's row is wide:
//
//	          wide row      narrow row
//	top-right (x,   y-1)    (x+1, y-1)
//	bot-right (x,   y+1)    (x+1, y+1)
//	bot-left  (x-1, y+1)    (x,   y+1)
//	top-left  (x-1, y-1)    (x,   y-1)
//
// Complexity: O(1).
func (l Layout) Neighbors(p Position) [6]Slot {
	x, y := p.X, p.Y
	var tr, br, bl, tl Position
	if l.IsWideRow(y) {
		tr = Position{x, y - 1}
		br = Position{x, y + 1}
		bl = Position{x - 1, y + 1}
		tl = Position{x - 1, y - 1}
	} else {
		tr = Position{x + 1, y - 1}
		br = Position{x + 1, y + 1}
		bl = Position{x, y + 1}
		tl = Position{x, y - 1}
	}
	positions := [6]Position{{x, y - 2}, tr, br, {x, y + 2}, bl, tl}

	var slots [6]Slot
	for i, q := range positions {
		slots[i] = Slot{Dir: Direction(i), Pos: q, Valid: l.InBounds(q)}
	}
	return slots
}

// Clamp returns the cell of l closest to p in offset coordinates: y is
// clamped to the row range, then x to that row's length. ok is false when
// the layout has no cells.
func (l Layout) Clamp(p Position) (q Position, ok bool) {
	if l.Size() == 0 {
		return Position{}, false
	}
	y := max(0, min(p.Y, l.Rows-1))
	if l.RowLen(y) == 0 {
		// single-column layouts leave every narrow row empty
		if y+1 < l.Rows {
			y++
		} else {
			y--
		}
	}
	x := max(0, min(p.X, l.RowLen(y)-1))
	return Position{X: x, Y: y}, true
}
