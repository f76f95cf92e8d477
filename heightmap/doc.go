// Package heightmap treats a rectangular grid of elevations as an
// immutable graph of 4-connected cells.
//
// What:
//
//   - GridMap wraps a rectangular grid of elevations in [0,25].
//   - Parse reads the puzzle text format: 'a'..'z' map to 0..25, 'S' marks
//     the source (elevation 0) and 'E' marks the target (elevation 25).
//   - Every Node carries a fixed-size adjacency array computed once at
//     construction time (north, south, west, east; in-bounds only).
//   - Direction describes which steps are legal under the climb constraint:
//     at most MaxClimb up, any amount down.
//
// Why:
//
//   - The grid is built once and read by any number of concurrent searches
//     without synchronisation.
//
// Complexity:
//
//   - Parse, New:        O(W×H) time and memory.
//   - Get, Neighbors:    O(1).
//
// Errors:
//
//   - ErrParse: umbrella for every text-format failure; the concrete cause
//     (ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMissingMarker,
//     ErrDuplicateMarker) is wrapped alongside it.
//   - ErrElevationRange: an elevation outside [MinElevation, MaxElevation].
//   - ErrNotFound: a position outside the grid bounds.
package heightmap
