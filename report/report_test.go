package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
	"github.com/katalvlaran/hillclimb/report"
)

func TestReport_WriteJSON(t *testing.T) {
	g, err := heightmap.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
	require.NoError(t, err)
	res, err := astar.Solve(g, g.Source, g.Target, heuristic.Euclidean)
	require.NoError(t, err)

	rep := report.New("sample.txt", g)
	rep.Add("forward", "euclidean", astar.Outcome{
		Query:   astar.Query{Name: "forward"},
		Result:  res,
		Elapsed: 1500 * time.Microsecond,
	}, true)
	rep.Add("reverse", "zero", astar.Outcome{
		Query: astar.Query{Name: "reverse"},
		Err:   astar.ErrUnreachable,
	}, true)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var back report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 8, back.Width)
	assert.Equal(t, report.Point{X: 5, Y: 2}, back.Target)
	require.Len(t, back.Runs, 2)

	fwd := back.Runs[0]
	assert.Equal(t, "found", fwd.Outcome)
	assert.Equal(t, 31, fwd.Length)
	assert.Len(t, fwd.Path, 32)
	assert.InDelta(t, 1.5, fwd.ElapsedMS, 1e-9)

	rev := back.Runs[1]
	assert.Equal(t, "unreachable", rev.Outcome)
	assert.Equal(t, astar.ErrUnreachable.Error(), rev.Error)
	assert.Empty(t, rev.Path)
}

func TestSchema(t *testing.T) {
	raw, err := report.Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	s := string(raw)
	for _, field := range []string{`"runs"`, `"path"`, `"elapsed_ms"`, `"outcome"`} {
		assert.Contains(t, s, field)
	}
}
