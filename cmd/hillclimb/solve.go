package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/metrics"
	"github.com/katalvlaran/hillclimb/render"
	"github.com/katalvlaran/hillclimb/report"
)

type solveOpts struct {
	json   bool
	render bool
	verify bool
}

func (a *app) solveCmd() *cobra.Command {
	var so solveOpts
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the forward and reverse route lengths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0], so)
		},
	}
	cmd.Flags().BoolVar(&so.json, "json", false, "write a JSON report")
	cmd.Flags().BoolVar(&so.render, "render", false, "draw each route under its length")
	cmd.Flags().BoolVar(&so.verify, "verify", false, "cross-check lengths with breadth-first search")

	return cmd
}

// queries builds the forward query (source to target) and the reverse
// query (target down to the nearest cell at the source's elevation).
func (a *app) queries(g *heightmap.GridMap) ([]astar.Query, error) {
	h, err := a.cfg.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	mk := func(d heightmap.Direction, src, dst heightmap.Position) astar.Query {
		opts := append(a.cfg.SearchOptions(), astar.WithDirection(d))
		if a.log.Enabled(context.Background(), slog.LevelDebug) {
			log := a.log.With("direction", d.String())
			opts = append(opts, astar.WithOnExpand(func(pos heightmap.Position, cost int) {
				log.Debug("expand", "pos", pos.String(), "cost", cost)
			}))
		}

		return astar.Query{Name: d.String(), Source: src, Target: dst, Heuristic: h, Options: opts}
	}

	return []astar.Query{
		mk(heightmap.Forward, g.Source, g.Target),
		mk(heightmap.Reverse, g.Target, g.Source),
	}, nil
}

func (a *app) runQueries(ctx context.Context, g *heightmap.GridMap, rec *metrics.Recorder) ([]astar.Outcome, error) {
	qs, err := a.queries(g)
	if err != nil {
		return nil, err
	}
	outcomes, err := astar.SolveAll(ctx, g, qs)
	if err != nil {
		return nil, err
	}
	for _, o := range outcomes {
		rec.Observe(o.Query.Name, a.cfg.Heuristic, o.Result, o.Err, o.Elapsed)
		a.log.Debug("search finished",
			"direction", o.Query.Name,
			"outcome", metrics.OutcomeOf(o.Err),
			"elapsed", o.Elapsed)
	}

	return outcomes, nil
}

func (a *app) solve(cmd *cobra.Command, path string, so solveOpts) error {
	g, err := loadGrid(cmd, path)
	if err != nil {
		return err
	}
	outcomes, err := a.runQueries(cmd.Context(), g, nil)
	if err != nil {
		return err
	}
	if so.verify {
		if err := verify(g, a.cfg.MaxClimb, outcomes); err != nil {
			return err
		}
		a.log.Info("lengths verified by breadth-first search")
	}

	out := cmd.OutOrStdout()
	if so.json {
		rep := report.New(path, g)
		for _, o := range outcomes {
			rep.Add(o.Query.Name, a.cfg.Heuristic, o, true)
		}

		return rep.WriteJSON(out)
	}

	return a.printLengths(out, g, outcomes, so.render)
}

func (a *app) printLengths(w io.Writer, g *heightmap.GridMap, outcomes []astar.Outcome, draw bool) error {
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Query.Name, o.Err))
			continue
		}
		fmt.Fprintln(w, o.Result.Length)
		if draw {
			ov := render.Overlay{Path: o.Result.Path, Visited: o.Result.Visited}
			if err := render.Text(w, g, ov, render.WithColor(a.cfg.Color)); err != nil {
				return err
			}
		}
	}

	return errors.Join(errs...)
}

// verify recomputes every found length with an uninformed breadth-first
// search and reports the first disagreement.
func verify(g *heightmap.GridMap, maxClimb int, outcomes []astar.Outcome) error {
	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		d, ok := heightmap.ParseDirection(o.Query.Name)
		if !ok {
			continue
		}
		res, err := bfs.BFS(g, o.Query.Source, bfs.WithDirection(d), bfs.WithMaxClimb(maxClimb))
		if err != nil {
			return err
		}

		want := -1
		if d == heightmap.Forward {
			if p, err := res.PathTo(o.Query.Target); err == nil {
				want = len(p) - 1
			}
		} else {
			goal, _ := g.Get(o.Query.Target)
			_, depth, found := res.Nearest(func(p heightmap.Position) bool {
				n, _ := g.Get(p)
				return n.Elevation == goal.Elevation
			})
			if found {
				want = depth
			}
		}
		if want != o.Result.Length {
			return fmt.Errorf("verify %s: astar length %d, breadth-first %d", o.Query.Name, o.Result.Length, want)
		}
	}

	return nil
}
