package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Text writes g with the overlay to w, one line per row. Without colour,
// path cells show arrows and every other cell its elevation letter.
func Text(w io.Writer, g *heightmap.GridMap, ov Overlay, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	for _, row := range layout(g, ov) {
		for _, c := range row {
			if !cfg.Color {
				bw.WriteRune(c.glyph)
				continue
			}
			fg, bg := cfg.colors(c)
			fr, fgG, fb := fg.RGB255()
			br, bgG, bb := bg.RGB255()
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c", fr, fgG, fb, br, bgG, bb, c.glyph)
		}
		if cfg.Color {
			bw.WriteString("\x1b[0m")
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
