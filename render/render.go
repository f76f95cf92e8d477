// Package render draws a heightmap.GridMap with a search overlay, either as
// text (optionally with 24-bit ANSI colour) or onto a tcell.Screen.
//
// Cells are coloured along a gradient from the lowest to the highest
// elevation. Cells the search never closed are dimmed, frontier cells are
// tinted, and the path is drawn with arrows pointing to the next step.
package render

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrNilGrid is returned when asked to render a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Overlay marks search state on top of the grid. Any field may be empty.
type Overlay struct {
	Path    []heightmap.Position
	Visited []heightmap.Position
	Open    []heightmap.Position
}

// Options configures rendering.
type Options struct {
	// Color enables 24-bit colour output in Text.
	Color bool
	// Low and High are the gradient end points for elevation 0 and 25.
	Low, High colorful.Color
	// Frontier tints open cells.
	Frontier colorful.Color
}

// Option represents a functional option for rendering.
type Option func(*Options)

// DefaultOptions returns colour output with a green-to-white gradient.
func DefaultOptions() Options {
	return Options{
		Color:    true,
		Low:      colorful.Color{R: 0.09, G: 0.27, B: 0.13},
		High:     colorful.Color{R: 0.96, G: 0.96, B: 0.98},
		Frontier: colorful.Color{R: 0.20, G: 0.45, B: 0.85},
	}
}

// WithColor toggles ANSI colour in Text.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

// WithGradient overrides the elevation gradient end points.
func WithGradient(low, high colorful.Color) Option {
	return func(o *Options) {
		o.Low, o.High = low, high
	}
}

// cellKind classifies a cell for drawing; later kinds win.
type cellKind int

const (
	kindUnseen cellKind = iota
	kindOpen
	kindVisited
	kindPath
)

// cell is the renderer-neutral picture of one grid cell.
type cell struct {
	glyph     rune
	kind      cellKind
	elevation int
}

// layout computes the picture shared by Text and Draw. Without any visited
// or open cells in the overlay every cell is drawn as visited.
func layout(g *heightmap.GridMap, ov Overlay) [][]cell {
	base := kindUnseen
	if len(ov.Visited) == 0 && len(ov.Open) == 0 {
		base = kindVisited
	}
	rows := make([][]cell, g.Height)
	for y := range rows {
		rows[y] = make([]cell, g.Width)
		for x := range rows[y] {
			p := heightmap.Position{X: x, Y: y}
			n, _ := g.Get(p)
			rows[y][x] = cell{glyph: g.Glyph(p), kind: base, elevation: n.Elevation}
		}
	}
	mark := func(ps []heightmap.Position, k cellKind) {
		for _, p := range ps {
			if g.InBounds(p) && rows[p.Y][p.X].kind < k {
				rows[p.Y][p.X].kind = k
			}
		}
	}
	mark(ov.Open, kindOpen)
	mark(ov.Visited, kindVisited)
	mark(ov.Path, kindPath)

	// Path cells point at the next step; the final cell keeps its glyph.
	for i := 0; i+1 < len(ov.Path); i++ {
		p, q := ov.Path[i], ov.Path[i+1]
		if g.InBounds(p) {
			rows[p.Y][p.X].glyph = arrow(p, q)
		}
	}

	return rows
}

// arrow returns the glyph for a step from p to q.
func arrow(p, q heightmap.Position) rune {
	switch {
	case q.X > p.X:
		return '>'
	case q.X < p.X:
		return '<'
	case q.Y > p.Y:
		return 'v'
	case q.Y < p.Y:
		return '^'
	}

	return '*'
}

// colors returns the foreground and background for c.
func (o Options) colors(c cell) (fg, bg colorful.Color) {
	t := float64(c.elevation-heightmap.MinElevation) / float64(heightmap.MaxElevation-heightmap.MinElevation)
	bg = o.Low.BlendHcl(o.High, t).Clamped()
	fg = colorful.Color{R: 0, G: 0, B: 0}
	if t < 0.5 {
		fg = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	}

	switch c.kind {
	case kindUnseen:
		bg = bg.BlendRgb(colorful.Color{}, 0.6).Clamped()
		fg = fg.BlendRgb(colorful.Color{}, 0.5).Clamped()
	case kindOpen:
		bg = bg.BlendHcl(o.Frontier, 0.5).Clamped()
	case kindPath:
		fg = colorful.Color{R: 1, G: 0.85, B: 0.1}
	}

	return fg, bg
}
