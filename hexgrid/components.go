package hexgrid

// Components finds every connected region of unblocked cells under hex
// adjacency. Regions are ordered by their first cell in row-major order;
// cells inside a region appear in breadth-first discovery order.
//
// Time:   O(rows·cols·6).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, g.layout.Size())
	var comps [][]Position

	for y, row := range g.cells {
		for x, c := range row {
			if c.Blocked {
				continue
			}
			p0 := Position{X: x, Y: y}
			i0 := g.layout.Index(p0)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			seen[i0] = true
			comp := []Position{p0}
			for qi := 0; qi < len(comp); qi++ {
				for _, s := range g.layout.Neighbors(comp[qi]) {
					if !s.Valid || g.cells[s.Pos.Y][s.Pos.X].Blocked {
						continue
					}
					vi := g.layout.Index(s.Pos)
					if !seen[vi] {
						seen[vi] = true
						comp = append(comp, s.Pos)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
