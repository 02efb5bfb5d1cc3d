// Package render draws hex grids and search results on a terminal.
//
// Cells are placed on a doubled-column axis: wide-row cells sit on even
// columns and narrow-row cells on the odd columns between them, so rows
// interleave the way the hexes do. Each column is then spread over two
// terminal columns:
//
//	.   .   .      wide row
//	  .   .        narrow row
//	.   .   .
//
// Renderer paints a grid onto a tcell.Screen; Text writes the same picture
// to any io.Writer. Player replays a search.Result step by step, first the
// traversal then the path, for staged animation.
package render
