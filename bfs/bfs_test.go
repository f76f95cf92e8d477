package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

const sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

func mustParse(t *testing.T, s string) *heightmap.GridMap {
	t.Helper()
	g, err := heightmap.ParseString(s)
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, heightmap.Position{})
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := mustParse(t, sample)
	_, err = bfs.BFS(g, heightmap.Position{X: 9, Y: 9})
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, g.Source, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, g.Source, bfs.WithMaxClimb(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SampleForward(t *testing.T) {
	g := mustParse(t, sample)
	res, err := bfs.BFS(g, g.Source)
	require.NoError(t, err)

	assert.Equal(t, g.Source, res.Order[0])
	assert.Equal(t, 31, res.Depth[g.Target])

	path, err := res.PathTo(g.Target)
	require.NoError(t, err)
	assert.Len(t, path, 32)
	assert.Equal(t, g.Source, path[0])
	assert.Equal(t, g.Target, path[len(path)-1])
}

func TestBFS_SampleReverseNearest(t *testing.T) {
	g := mustParse(t, sample)
	res, err := bfs.BFS(g, g.Target, bfs.WithDirection(heightmap.Reverse))
	require.NoError(t, err)

	low := func(p heightmap.Position) bool {
		n, err := g.Get(p)
		return err == nil && n.Elevation == 0
	}
	at, depth, ok := res.Nearest(low)
	require.True(t, ok)
	assert.Equal(t, 29, depth)
	assert.True(t, low(at))
}

// TestBFS_OrderIsByDepth checks that depths never decrease along Order.
func TestBFS_OrderIsByDepth(t *testing.T) {
	g := mustParse(t, sample)
	res, err := bfs.BFS(g, g.Source)
	require.NoError(t, err)

	for i := 1; i < len(res.Order); i++ {
		assert.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g := mustParse(t, sample)
	res, err := bfs.BFS(g, g.Source, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []heightmap.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, res.Order)

	_, err = res.PathTo(g.Target)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_OnVisitError(t *testing.T) {
	g := mustParse(t, sample)
	stop := errors.New("stop")
	visits := 0
	_, err := bfs.BFS(g, g.Source, bfs.WithOnVisit(func(heightmap.Position, int) error {
		visits++
		if visits == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

// TestBFS_Walled verifies a source boxed in by cliffs reaches only itself.
func TestBFS_Walled(t *testing.T) {
	g := mustParse(t, "Sc\ncE\n")
	res, err := bfs.BFS(g, g.Source)
	require.NoError(t, err)
	assert.Equal(t, []heightmap.Position{g.Source}, res.Order)
}
