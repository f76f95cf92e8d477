// SPDX-License-Identifier: MIT

package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap operations.
var (
	// ErrParse is wrapped by every error returned from Parse.
	ErrParse = errors.New("heightmap: parse error")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCell indicates a character outside [a-z], 'S' and 'E'.
	ErrInvalidCell = errors.New("heightmap: invalid cell character")
	// ErrMissingMarker indicates the source or target marker is absent.
	ErrMissingMarker = errors.New("heightmap: missing marker")
	// ErrDuplicateMarker indicates the source or target marker appears twice.
	ErrDuplicateMarker = errors.New("heightmap: duplicate marker")
	// ErrElevationRange indicates an elevation outside [MinElevation, MaxElevation].
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrNotFound indicates a position outside the grid bounds.
	ErrNotFound = errors.New("heightmap: position not found")
)

const (
	// MinElevation is the lowest elevation, written 'a' (or 'S').
	MinElevation = 0
	// MaxElevation is the highest elevation, written 'z' (or 'E').
	MaxElevation = 25
	// DefaultMaxClimb is how far a single step may go up.
	DefaultMaxClimb = 1

	// SourceMarker marks the source cell in the text format.
	SourceMarker = 'S'
	// TargetMarker marks the target cell in the text format.
	TargetMarker = 'E'
)

// Position is a cell coordinate: X is the column, Y is the row.
type Position struct {
	X, Y int
}

// String renders the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Adjacent reports whether q is one of the four axis neighbours of p.
func (p Position) Adjacent(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// Node is a single grid cell with its elevation and precomputed adjacency.
// The adjacency array is filled once by New and never mutated afterwards.
type Node struct {
	Pos       Position
	Elevation int

	adj  [4]Position
	nAdj int
}

// Adjacent returns the in-bounds axis neighbours of the node in
// north, south, west, east order.
func (n Node) Adjacent() []Position {
	out := make([]Position, n.nAdj)
	copy(out, n.adj[:n.nAdj])

	return out
}

// offsets are the 4-connected neighbour offsets in north, south, west, east order.
// The order only matters for deterministic tie-breaking.
var offsets = [4]Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// GridMap treats a 2D elevation grid as a graph. It is immutable once built:
// Width and Height are the dimensions, Source and Target the marker cells,
// and cells holds one Node per coordinate in row-major order.
type GridMap struct {
	Width, Height int
	Source        Position
	Target        Position

	cells []Node
}
