package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Draw paints g with the overlay onto s at the top-left corner, clipped to
// the screen size. It does not call Show.
func Draw(s tcell.Screen, g *heightmap.GridMap, ov Overlay, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sw, sh := s.Size()
	for y, row := range layout(g, ov) {
		if y >= sh {
			break
		}
		for x, c := range row {
			if x >= sw {
				break
			}
			fg, bg := cfg.colors(c)
			style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
			if c.kind == kindPath {
				style = style.Bold(true)
			}
			s.SetContent(x, y, c.glyph, nil, style)
		}
	}

	return nil
}

// DrawText writes a status line at row y, clipped to the screen width.
func DrawText(s tcell.Screen, y int, text string) {
	sw, _ := s.Size()
	x := 0
	for _, r := range text {
		if x >= sw {
			return
		}
		s.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < sw; x++ {
		s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()

	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Size returns the screen area Draw needs for g plus status lines.
func Size(g *heightmap.GridMap, statusLines int) (w, h int) {
	return g.Width, g.Height + statusLines
}
