package hexgrid

// Resize builds a fresh rows×cols grid under wide, then copies every cell of g
// whose coordinates also exist in the new grid. Walls, weights and markers
// survive inside the overlapping region; everything outside it starts at the
// defaults. g itself is left untouched.
//
// Start and target positions are kept by the caller, not by the grid, so the
// caller must re-check them with InBounds after a resize.
// Complexity: O(rows·cols).
func Resize(g *Grid, rows, cols int, wide WideRows) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	out, err := New(rows, cols, wide)
	if err != nil {
		return nil, err
	}

	shared := min(len(g.cells), len(out.cells))
	for y := 0; y < shared; y++ {
		n := min(len(g.cells[y]), len(out.cells[y]))
		copy(out.cells[y][:n], g.cells[y][:n])
	}

	return out, nil
}
