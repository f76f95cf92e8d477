// Package report turns search outcomes into a JSON document and publishes
// the JSON Schema that document conforms to.
package report

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/metrics"
)

// Point is a grid coordinate in the report.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Report describes one input grid and every search run against it.
type Report struct {
	Input  string `json:"input,omitempty" jsonschema:"description=Path of the parsed grid file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source Point  `json:"source"`
	Target Point  `json:"target"`
	Runs   []Run  `json:"runs"`
}

// Run is the outcome of a single search.
type Run struct {
	Name      string  `json:"name"`
	Direction string  `json:"direction" jsonschema:"enum=forward,enum=reverse"`
	Heuristic string  `json:"heuristic"`
	Outcome   string  `json:"outcome" jsonschema:"enum=found,enum=unreachable,enum=exhausted,enum=error"`
	Length    int     `json:"length"`
	Expanded  int     `json:"expanded"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Path      []Point `json:"path,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// New starts a report for grid g read from input.
func New(input string, g *heightmap.GridMap) *Report {
	return &Report{
		Input:  input,
		Width:  g.Width,
		Height: g.Height,
		Source: PointOf(g.Source),
		Target: PointOf(g.Target),
		Runs:   []Run{},
	}
}

// Add appends the run described by o.
func (r *Report) Add(direction, heuristic string, o astar.Outcome, withPath bool) {
	run := Run{
		Name:      o.Query.Name,
		Direction: direction,
		Heuristic: heuristic,
		Outcome:   metrics.OutcomeOf(o.Err),
		ElapsedMS: float64(o.Elapsed.Microseconds()) / 1000,
	}
	if o.Err != nil {
		run.Error = o.Err.Error()
	}
	if o.Result != nil {
		run.Length = o.Result.Length
		run.Expanded = o.Result.Expanded
		if withPath {
			run.Path = make([]Point, len(o.Result.Path))
			for i, p := range o.Result.Path {
				run.Path[i] = PointOf(p)
			}
		}
	}
	r.Runs = append(r.Runs, run)
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// Schema returns the JSON Schema of Report as indented JSON.
func Schema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&Report{}), "", "  ")
}

// PointOf converts a grid position.
func PointOf(p heightmap.Position) Point {
	return Point{X: p.X, Y: p.Y}
}
