// Package hexgrid models a hexagonal grid stored in offset coordinates and
// provides the geometry every search in hexpath is built on.
//
// Layout:
//
//	A grid is a sequence of rows; each row is a flat slice of cells indexed
//	from 0. Consecutive rows alternate between two widths, floor(cols/2) and
//	ceil(cols/2). WideRows declares which row parity holds the wider rows.
//	Rows are offset by half a cell, so a cell touches two cells in the row
//	above, two in the row below, and the cells two rows up and two rows down:
//
//	      Top
//	TL          TR
//	      (x,y)
//	BL          BR
//	     Bottom
//
// Adjacency:
//
//   - Layout.Neighbors is the single source of connectivity. It always returns
//     six slots in the fixed order Top, TopRight, BottomRight, Bottom,
//     BottomLeft, TopLeft; slots outside the grid are marked invalid.
//   - Layout.Distance is the minimum hop count between two cells under that
//     adjacency. It never overestimates and is exact on any grid with at
//     least two rows.
//
// Cells:
//
//   - Weight is the cost of entering a cell (1 = normal terrain, >1 = costly).
//   - Blocked cells cannot be entered but still exist in the grid.
//   - Visited and OnPath are presentation markers; searches never read them.
//
// Construction and resizing:
//
//   - New builds a grid with every cell at weight 1 and unblocked.
//   - Resize builds a grid of new dimensions and copies over every cell whose
//     coordinates exist in both grids.
//
// Complexity:
//
//   - Neighbors, Distance, Index, InBounds: O(1).
//   - New, Resize, Clone, Components: O(rows·cols).
package hexgrid
