// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil *heightmap.GridMap.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates a nil heuristic.Func.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrUnreachable indicates the frontier emptied before a goal was popped.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrExhaustedBudget indicates the MaxIterations cap was exceeded.
	ErrExhaustedBudget = errors.New("astar: iteration budget exhausted")
)

// Options configures a search.
//
// Direction     – Forward (default) or Reverse edge legality.
// MaxClimb      – largest legal rise per step; default heightmap.DefaultMaxClimb.
// MaxIterations – expansion cap; 0 means no cap.
// Goal          – termination predicate overriding the direction default.
// OnExpand      – called for every closed cell with its final cost.
type Options struct {
	Direction     heightmap.Direction
	MaxClimb      int
	MaxIterations int
	Goal          func(heightmap.Node) bool
	OnExpand      func(pos heightmap.Position, cost int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Forward search with the default climb limit,
// no iteration cap, no custom goal and a no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Direction:     heightmap.Forward,
		MaxClimb:      heightmap.DefaultMaxClimb,
		MaxIterations: 0,
		OnExpand:      func(heightmap.Position, int) {},
	}
}

// WithDirection selects Forward or Reverse edge legality.
func WithDirection(d heightmap.Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithMaxClimb sets the largest legal rise per step.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxClimb(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// WithMaxIterations caps the number of expansions; 0 disables the cap.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithGoal replaces the termination condition with pred.
func WithGoal(pred func(heightmap.Node) bool) Option {
	return func(o *Options) {
		if pred != nil {
			o.Goal = pred
		}
	}
}

// WithGoalElevation terminates at the first cell with elevation e.
func WithGoalElevation(e int) Option {
	return WithGoal(func(n heightmap.Node) bool { return n.Elevation == e })
}

// WithOnExpand registers a callback invoked for every closed cell.
func WithOnExpand(fn func(pos heightmap.Position, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: cells from source to goal inclusive.
//   - Length: number of edges, len(Path)-1.
//   - Expanded: number of cells closed before the goal was popped.
//   - Visited: the closed cells in expansion order.
type Result struct {
	Path     []heightmap.Position
	Length   int
	Expanded int
	Visited  []heightmap.Position
}

// Goal returns the last cell of the path.
func (r *Result) Goal() heightmap.Position {
	return r.Path[len(r.Path)-1]
}

// Snapshot exposes the state of a Stepper after one step.
type Snapshot struct {
	Step    int
	Current heightmap.Position
	Open    []heightmap.Position
	Closed  []heightmap.Position
	Done    bool
	Found   bool
	Path    []heightmap.Position
}

// Query is one independent search for SolveAll.
type Query struct {
	Name      string
	Source    heightmap.Position
	Target    heightmap.Position
	Heuristic heuristic.Func
	Options   []Option
}

// Outcome pairs a Query with its Result or error.
// Err holds search failures such as ErrUnreachable; they are not fatal to SolveAll.
type Outcome struct {
	Query   Query
	Result  *Result
	Err     error
	Elapsed time.Duration
}
