package astar

import (
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

// Stepper drives a search one expansion at a time, for viewers and debugging.
// It runs exactly the same loop as Solve.
type Stepper struct {
	r     *runner
	steps int
	done  bool
	found bool
	goal  heightmap.Position
	err   error
}

// NewStepper validates the inputs like Solve and returns a Stepper
// positioned before the first expansion.
func NewStepper(g *heightmap.GridMap, source, target heightmap.Position, h heuristic.Func, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, source, target, h, opts...)
	if err != nil {
		return nil, err
	}

	return &Stepper{r: r}, nil
}

// Step advances the search by one expansion and returns a snapshot.
// Once the search is over every further call returns the final snapshot
// and the terminal error (nil, ErrUnreachable or ErrExhaustedBudget).
func (s *Stepper) Step() (Snapshot, error) {
	if s.done {
		return s.snapshot(s.goal), s.err
	}

	s.steps++
	st, err := s.r.step()
	switch {
	case err != nil:
		s.done, s.err = true, err
	case st.found:
		s.done, s.found, s.goal = true, true, st.current
	}

	return s.snapshot(st.current), s.err
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Result returns the final Result once the goal has been found, or the
// terminal error. Before the search is over it returns (nil, nil).
func (s *Stepper) Result() (*Result, error) {
	if !s.done {
		return nil, nil
	}
	if !s.found {
		return nil, s.err
	}

	return s.r.result(s.goal), nil
}

func (s *Stepper) snapshot(current heightmap.Position) Snapshot {
	snap := Snapshot{
		Step:    s.steps,
		Current: current,
		Open:    s.r.open(),
		Closed:  append([]heightmap.Position(nil), s.r.visited...),
		Done:    s.done,
		Found:   s.found,
	}
	if s.found {
		snap.Path = s.r.reconstruct(s.goal)
	}

	return snap
}
