package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// BenchmarkBFS_Flat measures BFS on an n×n grid with a single elevation,
// where every cell is reachable.
func BenchmarkBFS_Flat(b *testing.B) {
	const n = 256
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
	}
	g, err := heightmap.New(cells, heightmap.Position{}, heightmap.Position{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Source)
	}
}

// BenchmarkBFS_Random runs reverse BFS on a random 128×128 terrain.
func BenchmarkBFS_Random(b *testing.B) {
	const n = 128
	rng := rand.New(rand.NewSource(42))
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
		for x := range cells[y] {
			cells[y][x] = rng.Intn(heightmap.MaxElevation + 1)
		}
	}
	g, err := heightmap.New(cells, heightmap.Position{}, heightmap.Position{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Target, bfs.WithDirection(heightmap.Reverse))
	}
}
