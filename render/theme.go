package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// Theme holds one style per cell state.
type Theme struct {
	Plain   tcell.Style
	Start   tcell.Style
	Target  tcell.Style
	Wall    tcell.Style
	Visited tcell.Style
	Path    tcell.Style
	Heavy   tcell.Style
	Status  tcell.Style
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Plain:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Start:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Target:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Wall:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
		Visited: tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Path:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Heavy:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 110, 60)),
		Status:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
}

// Glyph returns the rune for c. Precedence: start, target, wall, path,
// visited, weight, plain.
func Glyph(c hexgrid.Cell, start, target hexgrid.Position) rune {
	p := c.Position()
	switch {
	case p == start:
		return 'S'
	case p == target:
		return 'T'
	case c.Blocked:
		return '#'
	case c.OnPath:
		return '*'
	case c.Visited:
		return 'o'
	case c.Weight > 9:
		return '+'
	case c.Weight > 1:
		return rune('0' + c.Weight)
	default:
		return '.'
	}
}

func (t Theme) style(c hexgrid.Cell, start, target hexgrid.Position) tcell.Style {
	p := c.Position()
	switch {
	case p == start:
		return t.Start
	case p == target:
		return t.Target
	case c.Blocked:
		return t.Wall
	case c.OnPath:
		return t.Path
	case c.Visited:
		return t.Visited
	case c.Weight > 1:
		return t.Heavy
	default:
		return t.Plain
	}
}
