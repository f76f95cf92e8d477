// SPDX-License-Identifier: MIT
package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *heightmap.GridMap
	opts    BFSOptions
	queue   []queueItem
	visited map[heightmap.Position]bool
	res     *BFSResult
}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   heightmap.Position
	depth int
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *heightmap.GridMap, start heightmap.Position, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[heightmap.Position]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]heightmap.Position, 0, n),
			Depth:  make(map[heightmap.Position]int, n),
			Parent: make(map[heightmap.Position]heightmap.Position, n),
		},
	}

	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks pos visited at depth d, records its parent and queues it.
// The start cell is its own parent and gets no Parent entry.
func (w *walker) enqueue(pos heightmap.Position, d int, parent heightmap.Position) {
	w.visited[pos] = true
	w.res.Depth[pos] = d
	if pos != parent {
		w.res.Parent[pos] = parent
	}
	w.queue = append(w.queue, queueItem{pos: pos, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen cell reachable in one legal step.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	moves, err := w.grid.Moves(item.pos, w.opts.Direction, w.opts.MaxClimb)
	if err != nil {
		return fmt.Errorf("bfs: moves of %v: %w", item.pos, err)
	}
	for _, n := range moves {
		if !w.visited[n.Pos] {
			w.enqueue(n.Pos, nextDepth, item.pos)
		}
	}

	return nil
}
