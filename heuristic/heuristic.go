// Package heuristic provides cost-to-go estimators for grid searches.
//
// A Func is a pure function of two positions. All estimators here are
// admissible on a 4-connected grid with unit edge costs, so A* driven by any
// of them returns optimal paths; Zero degrades A* to uniform-cost search and
// exists for cross-validation.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrUnknownHeuristic is returned by ByName for an unregistered name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost from a to b.
type Func func(a, b heightmap.Position) float64

// Euclidean is the straight-line distance sqrt(dx²+dy²).
func Euclidean(a, b heightmap.Position) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan is |dx|+|dy|, the tightest admissible estimate on a 4-connected grid.
func Manhattan(a, b heightmap.Position) float64 {
	return math.Abs(float64(b.X-a.X)) + math.Abs(float64(b.Y-a.Y))
}

// Zero always returns 0.
func Zero(_, _ heightmap.Position) float64 {
	return 0
}

var registry = map[string]Func{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"zero":      Zero,
}

// ByName returns the registered heuristic called name.
func ByName(name string) (Func, error) {
	if fn, ok := registry[name]; ok {
		return fn, nil
	}

	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownHeuristic, name, Names())
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
