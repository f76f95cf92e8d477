// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

// Solve runs A* on g from source under the termination condition selected
// by the options (see package doc) and returns the shortest path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. Options must be valid (ErrOptionViolation).
//  4. source and target must lie inside g (heightmap.ErrNotFound).
//
// Search failures are ErrUnreachable and ErrExhaustedBudget.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H.
//   - Space: O(N).
func Solve(g *heightmap.GridMap, source, target heightmap.Position, h heuristic.Func, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, target, h, opts...)
	if err != nil {
		return nil, err
	}
	for {
		st, err := r.step()
		if err != nil {
			return nil, err
		}
		if st.found {
			return r.result(st.current), nil
		}
	}
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *heightmap.GridMap // read-only
	options Options
	source  heightmap.Position
	target  heightmap.Position
	h       heuristic.Func

	isGoal func(heightmap.Node) bool
	goals  []heightmap.Position
	hCache map[heightmap.Position]float64 // nil: estimate against target only

	gScore   map[heightmap.Position]int
	cameFrom map[heightmap.Position]heightmap.Position
	closed   map[heightmap.Position]bool
	frontier frontier
	seq      uint64
	visited  []heightmap.Position
}

// stepResult reports what a single step did.
type stepResult struct {
	current heightmap.Position
	found   bool
}

// newRunner validates the inputs and seeds the frontier with source.
func newRunner(g *heightmap.GridMap, source, target heightmap.Position, h heuristic.Func, opts ...Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if _, err := g.Get(source); err != nil {
		return nil, fmt.Errorf("astar: source: %w", err)
	}
	targetNode, err := g.Get(target)
	if err != nil {
		return nil, fmt.Errorf("astar: target: %w", err)
	}

	r := &runner{
		g:        g,
		options:  cfg,
		source:   source,
		target:   target,
		h:        h,
		gScore:   make(map[heightmap.Position]int),
		cameFrom: make(map[heightmap.Position]heightmap.Position),
		closed:   make(map[heightmap.Position]bool),
		frontier: make(frontier, 0, g.Len()),
	}

	switch {
	case cfg.Goal != nil:
		r.isGoal = cfg.Goal
		r.goals = g.Find(cfg.Goal)
	case cfg.Direction == heightmap.Reverse:
		elevation := targetNode.Elevation
		r.isGoal = func(n heightmap.Node) bool { return n.Elevation == elevation }
		r.goals = g.Find(r.isGoal)
	default:
		r.isGoal = func(n heightmap.Node) bool { return n.Pos == target }
	}

	if cfg.Goal != nil || cfg.Direction == heightmap.Reverse {
		r.hCache = make(map[heightmap.Position]float64)
	}

	heap.Init(&r.frontier)
	r.gScore[source] = 0
	r.push(source, 0)

	return r, nil
}

// estimate is the heuristic cost-to-go from p. With a goal set it is the
// minimum over all goals, which stays admissible, computed once per cell.
func (r *runner) estimate(p heightmap.Position) float64 {
	if r.hCache == nil {
		return r.h(p, r.target)
	}
	if v, ok := r.hCache[p]; ok {
		return v
	}
	v := r.nearestGoal(p)
	r.hCache[p] = v

	return v
}

func (r *runner) nearestGoal(p heightmap.Position) float64 {
	best := math.Inf(1)
	for _, goal := range r.goals {
		if v := r.h(p, goal); v < best {
			best = v
		}
	}
	if math.IsInf(best, 1) {
		// Empty goal set: nothing to aim at, the search will exhaust.
		return 0
	}

	return best
}

// push inserts p with cost g into the frontier.
func (r *runner) push(p heightmap.Position, g int) {
	r.seq++
	heap.Push(&r.frontier, &frontierItem{
		pos: p,
		g:   g,
		f:   float64(g) + r.estimate(p),
		seq: r.seq,
	})
}

// step pops the next live cell. If it satisfies the termination condition
// the step reports found; otherwise the cell is closed and its legal
// neighbours are relaxed. Stale heap entries are skipped within one step.
func (r *runner) step() (stepResult, error) {
	cfg := r.options
	for r.frontier.Len() > 0 {
		item := heap.Pop(&r.frontier).(*frontierItem)
		u := item.pos
		if r.closed[u] {
			continue
		}

		node, err := r.g.Get(u)
		if err != nil {
			return stepResult{}, err
		}
		if r.isGoal(node) {
			return stepResult{current: u, found: true}, nil
		}

		if cfg.MaxIterations > 0 && len(r.visited) >= cfg.MaxIterations {
			return stepResult{current: u}, fmt.Errorf("%w: %d expansions", ErrExhaustedBudget, cfg.MaxIterations)
		}

		r.closed[u] = true
		r.visited = append(r.visited, u)
		cfg.OnExpand(u, r.gScore[u])

		if err := r.relax(u); err != nil {
			return stepResult{}, err
		}

		return stepResult{current: u}, nil
	}

	return stepResult{}, ErrUnreachable
}

// relax improves the cost of every legal, unclosed neighbour of u.
func (r *runner) relax(u heightmap.Position) error {
	moves, err := r.g.Moves(u, r.options.Direction, r.options.MaxClimb)
	if err != nil {
		return fmt.Errorf("astar: moves of %v: %w", u, err)
	}
	tentative := r.gScore[u] + 1
	for _, n := range moves {
		v := n.Pos
		if r.closed[v] {
			continue
		}
		// Strictly better only, so equal-cost rediscoveries keep the first parent.
		if old, seen := r.gScore[v]; seen && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		r.cameFrom[v] = u
		r.push(v, tentative)
	}

	return nil
}

// result builds the Result for a search that popped goal.
func (r *runner) result(goal heightmap.Position) *Result {
	path := r.reconstruct(goal)
	visited := make([]heightmap.Position, len(r.visited))
	copy(visited, r.visited)

	return &Result{
		Path:     path,
		Length:   len(path) - 1,
		Expanded: len(r.visited),
		Visited:  visited,
	}
}

// reconstruct follows cameFrom from goal back to source.
func (r *runner) reconstruct(goal heightmap.Position) []heightmap.Position {
	path := []heightmap.Position{goal}
	for cur := goal; cur != r.source; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get source → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// open lists the cells currently waiting in the frontier, in row-major order.
func (r *runner) open() []heightmap.Position {
	seen := make(map[heightmap.Position]bool, len(r.frontier))
	out := make([]heightmap.Position, 0, len(r.frontier))
	for _, it := range r.frontier {
		if r.closed[it.pos] || seen[it.pos] {
			continue
		}
		seen[it.pos] = true
		out = append(out, it.pos)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.g.Index(out[i]) < r.g.Index(out[j])
	})

	return out
}
