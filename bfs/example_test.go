// File: example_test.go
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: fewest steps on a ramp
////////////////////////////////////////////////////////////////////////////////

// ExampleBFSResult_PathTo walks a three-cell ramp that rises by one per step.
func ExampleBFSResult_PathTo() {
	g, _ := heightmap.New([][]int{{0, 1, 2}}, heightmap.Position{X: 0, Y: 0}, heightmap.Position{X: 2, Y: 0})

	res, err := bfs.BFS(g, g.Source)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(g.Target)
	fmt.Println(path)
	// Output:
	// [0,0 1,0 2,0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: forward depth and reverse nearest cell on the sample grid
////////////////////////////////////////////////////////////////////////////////

// ExampleBFS_sample reports the forward distance to the target and the
// reverse distance from the target down to the nearest lowest cell.
func ExampleBFS_sample() {
	g, _ := heightmap.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")

	fwd, _ := bfs.BFS(g, g.Source)
	fmt.Println("forward:", fwd.Depth[g.Target])

	rev, _ := bfs.BFS(g, g.Target, bfs.WithDirection(heightmap.Reverse))
	_, depth, _ := rev.Nearest(func(p heightmap.Position) bool {
		n, _ := g.Get(p)
		return n.Elevation == heightmap.MinElevation
	})
	fmt.Println("reverse:", depth)
	// Output:
	// forward: 31
	// reverse: 29
}
