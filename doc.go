// Package hillclimb finds shortest climbing routes across elevation grids.
//
// 🚀 What is hillclimb?
//
//	A small pathfinding toolkit for grids of letter-coded elevations where a
//	step may rise by at most one level and may drop by any amount:
//		• heightmap: parse and validate grids, climb-legal neighbours
//		• heuristic: Euclidean, Manhattan and Zero estimates
//		• astar:     A* in forward and reverse mode, a Stepper, SolveAll
//		• bfs:       breadth-first reference search
//		• render:    ANSI text and tcell drawing of a search
//
// Under the hood:
//
//	heightmap/ — GridMap, Node, Position, Direction, Parse
//	astar/     — Solve, NewStepper, SolveAll, functional options
//	config/    — viper-backed settings for the command
//	metrics/   — Prometheus collectors for searches
//	report/    — JSON report and its JSON Schema
//	stream/    — websocket streaming of Stepper frames
//	cmd/hillclimb — the CLI (solve, view, serve, schema)
//
// Quick example:
//
//	Sabqponm
//	abcryxxl     forward S → E: 31 steps
//	accszExk     reverse E → nearest a: 29 steps
//	acctuvwj
//	abdefghi
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
