// Package astar implements A* search over a heightmap.GridMap under the
// climb constraint (a step may rise by at most MaxClimb, descent is free).
//
// Overview:
//
//   - Solve finds a minimum-length path from a source cell to a termination
//     condition: reaching the target (Forward) or reaching any cell of the
//     goal set (Reverse, or any direction with WithGoal).
//   - The frontier orders cells by f = g + h; ties are broken by insertion
//     order, so repeated calls return identical paths.
//   - Every edge costs 1 and illegal edges are pruned during neighbour
//     enumeration, so the first time a goal is popped its cost is optimal
//     for any consistent heuristic (Euclidean, Manhattan, Zero).
//   - Stepper drives the same search one expansion at a time for viewers.
//   - SolveAll runs independent queries concurrently against one grid.
//
// Direction modes:
//
//   - heightmap.Forward: walk from source towards target.
//   - heightmap.Reverse: walk backwards from source; by default the search
//     stops at the first cell whose elevation equals the target's, so
//     Solve(g, g.Target, g.Source, h, WithDirection(heightmap.Reverse))
//     answers "shortest climb from any lowest cell to the summit".
//
// When a goal set is in effect the heuristic is evaluated against every goal
// and the minimum is used, which keeps it admissible.
//
// Complexity:
//
//   - Time:  O(N log N) with N = W×H (each cell closed once, ≤4 pushes per close).
//   - Space: O(N) for score maps and the frontier.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilHeuristic: missing inputs.
//   - ErrOptionViolation: a negative MaxClimb or MaxIterations.
//   - heightmap.ErrNotFound: source or target outside the grid.
//   - ErrUnreachable: the frontier emptied before the termination condition held.
//     This is an expected outcome for disconnected terrain, not a failure.
//   - ErrExhaustedBudget: more than MaxIterations expansions were needed.
//
// Thread safety:
//
//   - A GridMap is read-only, so any number of Solve calls may share one.
//     Each call owns its search state; a Stepper must not be shared.
package astar
