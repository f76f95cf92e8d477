package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a GridMap from a non-empty, rectangular 2D slice of
// elevations indexed as elevations[y][x]. The input is copied.
//
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrElevationRange for an
// elevation outside [MinElevation, MaxElevation], and ErrNotFound if source
// or target lies outside the grid.
// Complexity: O(W×H) time and memory.
func New(elevations [][]int, source, target Position) (*GridMap, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevations), len(elevations[0])
	for y, row := range elevations {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g := &GridMap{
		Width:  w,
		Height: h,
		Source: source,
		Target: target,
		cells:  make([]Node, w*h),
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: source %v", ErrNotFound, source)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrNotFound, target)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := elevations[y][x]
			if e < MinElevation || e > MaxElevation {
				return nil, fmt.Errorf("%w: %d at %d,%d", ErrElevationRange, e, x, y)
			}
			p := Position{X: x, Y: y}
			n := Node{Pos: p, Elevation: e}
			// Adjacency is fixed for the lifetime of the grid.
			for _, d := range offsets {
				q := p.Add(d)
				if g.InBounds(q) {
					n.adj[n.nAdj] = q
					n.nAdj++
				}
			}
			g.cells[g.Index(p)] = n
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *GridMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to its row-major index: y*Width + x.
// The result is meaningless for out-of-bounds positions.
func (g *GridMap) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// PositionAt converts a row-major index back to a Position.
func (g *GridMap) PositionAt(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// Len returns the number of cells.
func (g *GridMap) Len() int {
	return len(g.cells)
}

// Get returns the node at p, or ErrNotFound if p is outside the grid.
// Complexity: O(1).
func (g *GridMap) Get(p Position) (Node, error) {
	if !g.InBounds(p) {
		return Node{}, fmt.Errorf("%w: %v outside %dx%d grid", ErrNotFound, p, g.Width, g.Height)
	}

	return g.cells[g.Index(p)], nil
}

// Neighbors returns the up-to-four axis-adjacent nodes of p in north,
// south, west, east order, or ErrNotFound if p is outside the grid.
// Complexity: O(1).
func (g *GridMap) Neighbors(p Position) ([]Node, error) {
	n, err := g.Get(p)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, n.nAdj)
	for _, q := range n.adj[:n.nAdj] {
		out = append(out, g.cells[g.Index(q)])
	}

	return out, nil
}

// Moves returns the neighbours of p reachable in one legal step in
// direction d with the given climb limit, preserving Neighbors order.
func (g *GridMap) Moves(p Position, d Direction, maxClimb int) ([]Node, error) {
	from, err := g.Get(p)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, from.nAdj)
	for _, q := range from.adj[:from.nAdj] {
		to := g.cells[g.Index(q)]
		if d.Traversable(from, to, maxClimb) {
			out = append(out, to)
		}
	}

	return out, nil
}

// Nodes returns a copy of every node in row-major order.
func (g *GridMap) Nodes() []Node {
	out := make([]Node, len(g.cells))
	copy(out, g.cells)

	return out
}

// Find returns the positions of every node matching pred, in row-major order.
func (g *GridMap) Find(pred func(Node) bool) []Position {
	var out []Position
	for _, n := range g.cells {
		if pred(n) {
			out = append(out, n.Pos)
		}
	}

	return out
}

// Elevations returns a deep copy of the grid as elevations[y][x].
func (g *GridMap) Elevations() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = make([]int, g.Width)
		for x := range out[y] {
			out[y][x] = g.cells[y*g.Width+x].Elevation
		}
	}

	return out
}

// String renders the grid back into the text format accepted by Parse.
func (g *GridMap) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.Glyph(Position{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Glyph returns the text-format character for p: the source and target
// markers, otherwise the elevation letter. Out-of-bounds positions yield '?'.
func (g *GridMap) Glyph(p Position) rune {
	switch {
	case !g.InBounds(p):
		return '?'
	case p == g.Source:
		return SourceMarker
	case p == g.Target:
		return TargetMarker
	}

	return rune('a' + g.cells[g.Index(p)].Elevation)
}
