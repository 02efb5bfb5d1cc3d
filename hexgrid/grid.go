package hexgrid

import "fmt"

// DefaultWeight is the weight of a freshly constructed cell.
const DefaultWeight = 1

// Grid is a hex grid of alternating-width rows. Row lengths are fixed by the
// Layout; the grid is rebuilt wholesale (see Resize) when dimensions change.
//
// A Grid is not safe for concurrent mutation. Searches only read it.
type Grid struct {
	layout Layout
	cells  [][]Cell
}

// New builds a rows×cols grid whose wide rows follow wide. Every cell starts
// with weight DefaultWeight, unblocked, with no presentation markers.
//
// Returns ErrBadDimensions for negative rows or cols and ErrBadWideRows for an
// unknown parity.
// Complexity: O(rows·cols).
func New(rows, cols int, wide WideRows) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrBadDimensions, rows, cols)
	}
	if !wide.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadWideRows, int(wide))
	}

	l := Layout{Rows: rows, Cols: cols, Wide: wide}
	g := &Grid{layout: l, cells: make([][]Cell, rows)}
	for y := 0; y < rows; y++ {
		row := make([]Cell, l.RowLen(y))
		for x := range row {
			row[x] = Cell{X: x, Y: y, Weight: DefaultWeight}
		}
		g.cells[y] = row
	}

	return g, nil
}

// Layout returns the grid geometry.
func (g *Grid) Layout() Layout { return g.layout }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.layout.Rows }

// Cols returns the configured column count (the sum of one wide and one narrow row).
func (g *Grid) Cols() int { return g.layout.Cols }

// Wide returns the wide-row parity.
func (g *Grid) Wide() WideRows { return g.layout.Wide }

// RowLen returns the length of row y, or 0 outside the grid.
func (g *Grid) RowLen(y int) int { return g.layout.RowLen(y) }

// InBounds reports whether p indexes an existing cell.
func (g *Grid) InBounds(p Position) bool { return g.layout.InBounds(p) }

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.layout.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Y][p.X], true
}

// Row returns a copy of row y, or nil outside the grid.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= len(g.cells) {
		return nil
	}
	row := make([]Cell, len(g.cells[y]))
	copy(row, g.cells[y])
	return row
}

// Each calls fn with a copy of every cell in row-major order.
func (g *Grid) Each(fn func(c Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// NeighborCells returns the six neighbors of (x, y) in Neighbors order.
// Empty slots are nil. The pointers alias the grid's storage.
func (g *Grid) NeighborCells(x, y int) [6]*Cell {
	var out [6]*Cell
	for i, s := range g.layout.Neighbors(Position{X: x, Y: y}) {
		if s.Valid {
			out[i] = &g.cells[s.Pos.Y][s.Pos.X]
		}
	}
	return out
}

func (g *Grid) at(p Position) (*Cell, error) {
	if !g.layout.InBounds(p) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return &g.cells[p.Y][p.X], nil
}

// SetWeight sets the cost of entering p. Weights below 1 are rejected.
func (g *Grid) SetWeight(p Position, weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: %s weight=%d", ErrInvalidWeight, p, weight)
	}
	c, err := g.at(p)
	if err != nil {
		return err
	}
	c.Weight = weight
	return nil
}

// SetBlocked marks p as impassable (or clears the mark).
func (g *Grid) SetBlocked(p Position, blocked bool) error {
	c, err := g.at(p)
	if err != nil {
		return err
	}
	c.Blocked = blocked
	return nil
}

// SetVisited sets the Visited presentation marker of p.
func (g *Grid) SetVisited(p Position, visited bool) error {
	c, err := g.at(p)
	if err != nil {
		return err
	}
	c.Visited = visited
	return nil
}

// SetOnPath sets the OnPath presentation marker of p.
func (g *Grid) SetOnPath(p Position, onPath bool) error {
	c, err := g.at(p)
	if err != nil {
		return err
	}
	c.OnPath = onPath
	return nil
}

// ClearMarks resets Visited and OnPath on every cell. Weights and walls stay.
func (g *Grid) ClearMarks() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Visited = false
			g.cells[y][x].OnPath = false
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{layout: g.layout, cells: make([][]Cell, len(g.cells))}
	for y, row := range g.cells {
		out.cells[y] = make([]Cell, len(row))
		copy(out.cells[y], row)
	}
	return out
}
