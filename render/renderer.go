package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// Renderer paints grids onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer returns a Renderer drawing on screen with theme.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Draw clears the screen, paints every cell of g, writes status on the line
// below the grid and shows the result. Cells beyond the screen are clipped.
func (r *Renderer) Draw(g *hexgrid.Grid, start, target hexgrid.Position, status string) {
	r.screen.Clear()
	wide := g.Wide()
	g.Each(func(c hexgrid.Cell) {
		x, y := ScreenPos(c.Position(), wide)
		r.screen.SetContent(x, y, Glyph(c, start, target), nil, r.theme.style(c, start, target))
	})

	w, _ := r.screen.Size()
	y := g.Rows()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.theme.Status)
	}
	for x, ch := range []rune(status) {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, r.theme.Status)
	}
	r.screen.Show()
}

// Text writes g to w as plain text, one line per row, using the same
// placement and glyphs as Renderer.
func Text(w io.Writer, g *hexgrid.Grid, start, target hexgrid.Position) error {
	width, height := Extent(g.Layout())
	lines := make([][]rune, height)
	for y := range lines {
		lines[y] = []rune(strings.Repeat(" ", width))
	}
	wide := g.Wide()
	g.Each(func(c hexgrid.Cell) {
		x, y := ScreenPos(c.Position(), wide)
		lines[y][x] = Glyph(c, start, target)
	})

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(string(trimRight(line)))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func trimRight(line []rune) []rune {
	n := len(line)
	for n > 0 && line[n-1] == ' ' {
		n--
	}
	return line[:n]
}
