package render

import "github.com/katalvlaran/hexpath/hexgrid"

// ScreenPos returns the terminal cell of p under the given parity:
// x = 2·column on the doubled-column axis, y = row.
func ScreenPos(p hexgrid.Position, wide hexgrid.WideRows) (x, y int) {
	c := 2*p.X + 1
	if (hexgrid.Layout{Wide: wide}).IsWideRow(p.Y) {
		c = 2 * p.X
	}
	return 2 * c, p.Y
}

// Extent returns the terminal width and height needed to draw l, status line
// excluded.
func Extent(l hexgrid.Layout) (w, h int) {
	if l.Cols <= 0 || l.Rows <= 0 {
		return 0, 0
	}
	return 2*(l.Cols-1) + 1, l.Rows
}

// FitLayout returns the largest layout that fits a screenW×screenH terminal
// with one line left for the status bar.
func FitLayout(screenW, screenH int, wide hexgrid.WideRows) hexgrid.Layout {
	l := hexgrid.Layout{Wide: wide}
	if screenW > 0 {
		// 2·(cols-1) must stay below screenW
		l.Cols = (screenW-1)/2 + 1
	}
	if screenH > 1 {
		l.Rows = screenH - 1
	}
	return l
}
