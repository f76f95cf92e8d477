package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start position lies outside the grid.
	ErrStartNotFound = errors.New("bfs: start position not found")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a position that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Direction selects forward or reverse climb legality.
	Direction heightmap.Direction

	// MaxClimb is the largest legal rise per step.
	MaxClimb int

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(pos heightmap.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - forward direction with heightmap.DefaultMaxClimb
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Direction: heightmap.Forward,
		MaxClimb:  heightmap.DefaultMaxClimb,
		OnVisit:   func(heightmap.Position, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithDirection selects forward or reverse climb legality.
func WithDirection(d heightmap.Direction) Option {
	return func(o *BFSOptions) {
		o.Direction = d
	}
}

// WithMaxClimb sets the largest legal rise per step; negative is a violation.
func WithMaxClimb(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(pos heightmap.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence (non-decreasing depth).
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Start  heightmap.Position
	Order  []heightmap.Position
	Depth  map[heightmap.Position]int
	Parent map[heightmap.Position]heightmap.Position
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest heightmap.Position) ([]heightmap.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []heightmap.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Nearest returns the first visited cell satisfying pred and its depth.
// Because Order is sorted by depth, that cell is a closest one.
func (r *BFSResult) Nearest(pred func(heightmap.Position) bool) (heightmap.Position, int, bool) {
	for _, p := range r.Order {
		if pred(p) {
			return p, r.Depth[p], true
		}
	}

	return heightmap.Position{}, 0, false
}
