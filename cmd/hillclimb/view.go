package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/render"
)

const statusLines = 2

func (a *app) viewCmd() *cobra.Command {
	var direction string
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Animate the search in the terminal (q or Esc quits)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := heightmap.ParseDirection(direction)
			if !ok {
				return fmt.Errorf("unknown direction %q", direction)
			}
			g, err := loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			st, err := a.stepper(g, d)
			if err != nil {
				return err
			}

			s, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := s.Init(); err != nil {
				return err
			}
			defer s.Fini()
			if w, h := render.Size(g, statusLines); !fits(s, w, h) {
				a.log.Warn("terminal smaller than grid, output is clipped", "need_cols", w, "need_rows", h)
			}

			done := make(chan struct{})
			defer close(done)
			events := pollEvents(s, done)

			v := viewer{screen: s, grid: g, delay: a.cfg.StepDelay, color: a.cfg.Color, label: d.String()}

			return v.run(cmd.Context(), st, events, true)
		},
	}
	cmd.Flags().StringVar(&direction, "direction", "forward", "forward or reverse")

	return cmd
}

func (a *app) stepper(g *heightmap.GridMap, d heightmap.Direction) (*astar.Stepper, error) {
	h, err := a.cfg.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	src, dst := g.Source, g.Target
	if d == heightmap.Reverse {
		src, dst = dst, src
	}
	opts := append(a.cfg.SearchOptions(), astar.WithDirection(d))

	return astar.NewStepper(g, src, dst, h, opts...)
}

// viewer animates a Stepper on a tcell screen.
type viewer struct {
	screen tcell.Screen
	grid   *heightmap.GridMap
	delay  time.Duration
	color  bool
	label  string
}

// run draws one frame per step. With hold set it keeps the final frame
// until a quit key arrives; events may be nil when hold is false.
func (v viewer) run(ctx context.Context, st *astar.Stepper, events <-chan tcell.Event, hold bool) error {
	var tick <-chan time.Time
	if v.delay > 0 {
		t := time.NewTicker(v.delay)
		defer t.Stop()
		tick = t.C
	}

	for !st.Done() {
		snap, _ := st.Step()
		if err := v.frame(snap, st); err != nil {
			return err
		}
		if tick == nil {
			if ctx.Err() != nil || quit(events) {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || isQuit(ev) {
				return nil
			}
		case <-tick:
		}
	}

	for hold {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || isQuit(ev) {
				return nil
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				v.screen.Sync()
			}
		}
	}

	return nil
}

func (v viewer) frame(snap astar.Snapshot, st *astar.Stepper) error {
	v.screen.Clear()
	ov := render.Overlay{Path: snap.Path, Visited: snap.Closed, Open: snap.Open}
	if err := render.Draw(v.screen, v.grid, ov, render.WithColor(v.color)); err != nil {
		return err
	}

	status := fmt.Sprintf("%s step %d  open %d  closed %d", v.label, snap.Step, len(snap.Open), len(snap.Closed))
	if st.Done() {
		if res, err := st.Result(); err != nil {
			status += "  " + err.Error()
		} else {
			status += fmt.Sprintf("  length %d", res.Length)
		}
	}
	render.DrawText(v.screen, v.grid.Height, status)
	render.DrawText(v.screen, v.grid.Height+statusLines-1, "q quits")
	v.screen.Show()

	return nil
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed. The returned channel is closed when forwarding stops.
func pollEvents(s tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 8)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	return events
}

// quit drains pending events without blocking.
func quit(events <-chan tcell.Event) bool {
	if events == nil {
		return false
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok || isQuit(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func fits(s tcell.Screen, w, h int) bool {
	sw, sh := s.Size()
	return sw >= w && sh >= h
}

func isQuit(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return k.Rune() == 'q'
	}

	return false
}
