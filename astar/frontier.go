package astar

import "github.com/katalvlaran/hillclimb/heightmap"

// frontierItem is one pending cell. seq records insertion order and breaks
// ties between equal f values, which makes the search deterministic.
type frontierItem struct {
	pos heightmap.Position
	g   int
	f   float64
	seq uint64
}

// frontier is a min-heap of *frontierItem ordered by (f, seq).
// It uses the lazy decrease-key approach: an improved cell is pushed again
// and the outdated entry is skipped when popped (its cell is already closed).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then by insertion sequence.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x, which must be a *frontierItem. Called by heap.Push.
func (q *frontier) Push(x any) { *q = append(*q, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
