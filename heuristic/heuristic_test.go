package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

func TestEstimators(t *testing.T) {
	a := heightmap.Position{X: 1, Y: 2}
	b := heightmap.Position{X: 4, Y: 6}

	assert.InDelta(t, 5.0, heuristic.Euclidean(a, b), 1e-12)
	assert.InDelta(t, 5.0, heuristic.Euclidean(b, a), 1e-12)
	assert.Equal(t, 7.0, heuristic.Manhattan(a, b))
	assert.Equal(t, 0.0, heuristic.Zero(a, b))

	for _, name := range heuristic.Names() {
		fn, err := heuristic.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, 0.0, fn(a, a), "%s(a,a)", name)
	}
}

// TestAdmissible checks Euclidean ≤ Manhattan, the true unit-grid distance
// when there are no obstacles.
func TestAdmissible(t *testing.T) {
	origin := heightmap.Position{}
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			p := heightmap.Position{X: x, Y: y}
			assert.LessOrEqual(t, heuristic.Euclidean(origin, p), heuristic.Manhattan(origin, p))
		}
	}
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"euclidean", "manhattan", "zero"}, heuristic.Names())

	_, err := heuristic.ByName("octile")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}
