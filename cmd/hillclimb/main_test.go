package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/report"
)

const sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

func writeGrid(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errb.String(), err
}

func testApp() *app {
	return &app{cfg: config.Default(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestRoot_PrintsLengths(t *testing.T) {
	out, _, err := execute(t, "", writeGrid(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "31\n29\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := execute(t, sample, "solve", "-", "--heuristic=zero")
	require.NoError(t, err)
	assert.Equal(t, "31\n29\n", out)
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := execute(t, "", "solve", writeGrid(t, sample), "--json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Runs, 2)
	assert.Equal(t, "forward", rep.Runs[0].Direction)
	assert.Equal(t, 31, rep.Runs[0].Length)
	assert.Len(t, rep.Runs[0].Path, 32)
	assert.Equal(t, "reverse", rep.Runs[1].Direction)
	assert.Equal(t, 29, rep.Runs[1].Length)
	assert.Equal(t, "found", rep.Runs[1].Outcome)
}

func TestSolve_VerifyAndDebugLog(t *testing.T) {
	out, stderr, err := execute(t, "", "solve", writeGrid(t, sample), "--verify", "--log-level=debug")
	require.NoError(t, err)
	assert.Equal(t, "31\n29\n", out)
	assert.Contains(t, stderr, "msg=expand")
	assert.Contains(t, stderr, "lengths verified")
}

func TestSolve_Render(t *testing.T) {
	out, _, err := execute(t, "", "solve", writeGrid(t, sample), "--render", "--color=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+2*5)
	assert.Equal(t, "31", lines[0])
	assert.Equal(t, "29", lines[6])
}

func TestSolve_Unreachable(t *testing.T) {
	out, _, err := execute(t, "", "solve", writeGrid(t, "Scz\nczz\nzzE\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, astar.ErrUnreachable)
	assert.Contains(t, err.Error(), "forward")
	assert.Empty(t, out)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "", "solve", writeGrid(t, sample), "--heuristic=octile")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "solve", writeGrid(t, "Sab\nE\n"))
	assert.ErrorIs(t, err, heightmap.ErrParse)

	_, _, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "solve", writeGrid(t, sample), "--max-iterations=2")
	assert.ErrorIs(t, err, astar.ErrExhaustedBudget)
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, `"elapsed_ms"`)
}

func TestServe_Mux(t *testing.T) {
	g, err := heightmap.ParseString(sample)
	require.NoError(t, err)
	srv := httptest.NewServer(testApp().newMux("sample", g, prometheus.NewRegistry()))
	t.Cleanup(srv.Close)

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(b)
	}

	code, body := get("/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	code, body = get("/report?path")
	require.Equal(t, http.StatusOK, code)
	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(body), &rep))
	require.Len(t, rep.Runs, 2)
	assert.Equal(t, 31, rep.Runs[0].Length)
	assert.Len(t, rep.Runs[1].Path, 30)

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `hillclimb_searches_total{direction="forward",heuristic="euclidean",outcome="found"} 1`)
}

func TestViewer_RunsToCompletion(t *testing.T) {
	g, err := heightmap.ParseString(sample)
	require.NoError(t, err)

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(60, g.Height+statusLines)

	a := testApp()
	for _, tc := range []struct {
		d    heightmap.Direction
		want string
	}{
		{heightmap.Forward, "length 31"},
		{heightmap.Reverse, "length 29"},
	} {
		st, err := a.stepper(g, tc.d)
		require.NoError(t, err)

		v := viewer{screen: s, grid: g, label: tc.d.String()}
		require.NoError(t, v.run(context.Background(), st, nil, false))
		assert.True(t, st.Done())

		cells, w, _ := s.GetContents()
		var row strings.Builder
		for x := 0; x < w; x++ {
			row.WriteString(string(cells[g.Height*w+x].Runes))
		}
		assert.Contains(t, row.String(), tc.want)
		assert.True(t, strings.HasPrefix(row.String(), tc.d.String()))
	}
}

func TestViewer_StopsOnCancel(t *testing.T) {
	g, err := heightmap.ParseString(sample)
	require.NoError(t, err)
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	st, err := testApp().stepper(g, heightmap.Forward)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := viewer{screen: s, grid: g, label: "forward"}
	require.NoError(t, v.run(ctx, st, nil, true))
	assert.False(t, st.Done(), "cancelled view must stop after the first frame")
}

func TestPollEvents(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())

	done := make(chan struct{})
	events := pollEvents(s, done)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	timeout := time.After(2 * time.Second)
	for gotKey := false; !gotKey; {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				assert.True(t, isQuit(ev))
				gotKey = true
			}
		case <-timeout:
			t.Fatal("injected key not forwarded")
		}
	}

	close(done)
	s.Fini()
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event channel not closed after Fini")
		}
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventResize(10, 10)))

	ch := make(chan tcell.Event, 2)
	ch <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.False(t, quit(ch))
	ch <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.True(t, quit(ch))
}
