// Package bfs provides breadth-first search over a heightmap.GridMap,
// returning unit-step shortest distances, parent links, and visit order
// under the climb constraint.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Follow only climb-legal moves (heightmap.Direction.Traversable),
//     forward or reverse, with a configurable MaxClimb.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook may abort the walk with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Every move costs one step, so BFS depth is the exact shortest length.
//     The astar package is tested against it, and `hillclimb solve --verify`
//     uses it to cross-check results.
//   - Nearest answers goal-set questions ("closest cell at elevation 0")
//     in a single walk.
//
// Determinism
//
//	heightmap.GridMap.Moves returns neighbours in north, south, west, east
//	order and BFS enqueues them in that order, so Order is reproducible.
//
// Complexity (V = cells, E ≤ 4V moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartNotFound    if the start cell is outside the grid.
//   - ErrOptionViolation  for a negative MaxDepth or MaxClimb.
//   - ErrNoPath           from PathTo for an unreached cell.
//   - Wrapped OnVisit errors.
package bfs
