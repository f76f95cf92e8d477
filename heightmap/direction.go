package heightmap

// Direction selects which way edges are followed during a search.
type Direction int

const (
	// Forward follows edges as walked: up at most maxClimb, down freely.
	Forward Direction = iota
	// Reverse follows edges backwards: a step from→to is legal iff the
	// forward step to→from would be.
	Reverse
)

// String returns "forward" or "reverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}

	return "unknown"
}

// Traversable reports whether a single step from → to is legal in
// direction d. Descent is unconstrained; ascent is limited to maxClimb.
func (d Direction) Traversable(from, to Node, maxClimb int) bool {
	if d == Reverse {
		from, to = to, from
	}

	return to.Elevation-from.Elevation <= maxClimb
}

// ParseDirection maps "forward"/"reverse" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "forward", "fwd", "":
		return Forward, true
	case "reverse", "rev":
		return Reverse, true
	}

	return Forward, false
}
