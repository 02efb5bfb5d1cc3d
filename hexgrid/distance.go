package hexgrid

// column places p on a doubled-column axis: wide-row cells sit on even
// columns, narrow-row cells on the odd columns between them. Under that
// placement every neighbor is (c, y±2) or (c±1, y±1).
func (l Layout) column(p Position) int {
	if l.IsWideRow(p.Y) {
		return 2 * p.X
	}
	return 2*p.X + 1
}

// Distance returns the minimum number of adjacency hops between p1 and p2,
// assuming every hop costs 1 (the hex "taxicab" distance).
//
// Each diagonal hop moves one column and one row; a vertical hop moves two
// rows. With dc columns and dr rows to cover, the walk takes dc diagonal hops
// plus (dr-dc)/2 vertical ones when dr exceeds dc. dr-dc is always even
// because column parity follows row wideness.
//
// Distance is symmetric, zero only for equal positions, and never
// overestimates the true hop count, so it is a consistent heuristic for
// unit-cost searches.
// Complexity: O(1).
func (l Layout) Distance(p1, p2 Position) int {
	dc := abs(l.column(p1) - l.column(p2))
	dr := abs(p1.Y - p2.Y)
	if dr <= dc {
		return dc
	}
	return dc + (dr-dc)/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
