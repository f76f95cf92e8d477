// Package stream serves a search over a websocket, one JSON frame per
// expansion, so a browser or terminal client can animate it.
package stream

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
	"github.com/katalvlaran/hillclimb/metrics"
	"github.com/katalvlaran/hillclimb/report"
)

// Frame types.
const (
	FrameStep = "step"
	FrameDone = "done"
)

// Frame is one websocket message.
type Frame struct {
	Type     string         `json:"type"`
	Step     int            `json:"step"`
	Current  report.Point   `json:"current"`
	Open     []report.Point `json:"open,omitempty"`
	Closed   []report.Point `json:"closed,omitempty"`
	Found    bool           `json:"found"`
	Path     []report.Point `json:"path,omitempty"`
	Length   int            `json:"length,omitempty"`
	Expanded int            `json:"expanded,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// HandlerConfig configures a Handler. Options are appended to every search.
type HandlerConfig struct {
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Heuristic string
	StepDelay time.Duration
	Options   []astar.Option
}

// Handler streams searches over one grid to websocket clients.
type Handler struct {
	grid     *heightmap.GridMap
	cfg      HandlerConfig
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler returns a Handler for g. A nil Logger means slog.Default.
func NewHandler(g *heightmap.GridMap, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Heuristic == "" {
		cfg.Heuristic = "euclidean"
	}

	return &Handler{
		grid:   g,
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle serves /ws?direction=forward|reverse&heuristic=NAME.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dir, ok := heightmap.ParseDirection(q.Get("direction"))
	if !ok {
		http.Error(w, "unknown direction", http.StatusBadRequest)
		return
	}
	name := q.Get("heuristic")
	if name == "" {
		name = h.cfg.Heuristic
	}
	hf, err := heuristic.ByName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	source, target := h.grid.Source, h.grid.Target
	if dir == heightmap.Reverse {
		source, target = target, source
	}
	opts := append([]astar.Option{astar.WithDirection(dir)}, h.cfg.Options...)
	st, err := astar.NewStepper(h.grid, source, target, hf, opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	log := h.logger.With("direction", dir.String(), "heuristic", name)
	log.Debug("stream started", "remote", r.RemoteAddr)

	var ticker *time.Ticker
	if h.cfg.StepDelay > 0 {
		ticker = time.NewTicker(h.cfg.StepDelay)
		defer ticker.Stop()
	}

	var aborted error
	res, serr := h.cfg.Metrics.Track(dir.String(), name, func() (*astar.Result, error) {
		for !st.Done() {
			snap, _ := st.Step()
			if err := conn.WriteJSON(stepFrame(snap)); err != nil {
				aborted = fmt.Errorf("stream: step %d: %w", snap.Step, err)
				return nil, aborted
			}
			if ticker != nil {
				select {
				case <-r.Context().Done():
					aborted = r.Context().Err()
					return nil, aborted
				case <-ticker.C:
				}
			}
		}

		return st.Result()
	})
	if aborted != nil {
		log.Debug("client gone", "err", aborted)
		return
	}

	final := Frame{Type: FrameDone, Found: serr == nil}
	if serr != nil {
		final.Error = serr.Error()
	} else {
		final.Current = report.PointOf(res.Goal())
		final.Path = points(res.Path)
		final.Length = res.Length
		final.Expanded = res.Expanded
	}
	if err := conn.WriteJSON(final); err != nil {
		log.Debug("final frame not delivered", "err", err)
		return
	}
	log.Info("stream finished", "found", final.Found, "length", final.Length)

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func stepFrame(s astar.Snapshot) Frame {
	return Frame{
		Type:    FrameStep,
		Step:    s.Step,
		Current: report.PointOf(s.Current),
		Open:    points(s.Open),
		Closed:  points(s.Closed),
		Found:   s.Found,
		Path:    points(s.Path),
	}
}

func points(ps []heightmap.Position) []report.Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]report.Point, len(ps))
	for i, p := range ps {
		out[i] = report.PointOf(p)
	}

	return out
}
