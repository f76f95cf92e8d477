// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve finds the fewest steps from S to E, then the fewest steps
// from E down to any 'a' cell by searching in reverse.
func ExampleSolve() {
	g, _ := heightmap.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")

	up, err := astar.Solve(g, g.Source, g.Target, heuristic.Euclidean)
	if err != nil {
		fmt.Println(err)
		return
	}
	down, err := astar.Solve(g, g.Target, g.Source, heuristic.Euclidean,
		astar.WithDirection(heightmap.Reverse))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("forward:", up.Length)
	fmt.Println("reverse:", down.Length)

	// Output:
	// forward: 31
	// reverse: 29
}

// ExampleSolve_unreachable shows that a walled-in source is an ordinary outcome.
func ExampleSolve_unreachable() {
	g, _ := heightmap.ParseString("Sc\ncE\n")
	_, err := astar.Solve(g, g.Source, g.Target, heuristic.Zero)
	fmt.Println(err)

	// Output:
	// astar: goal unreachable
}
