package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/metrics"
	"github.com/katalvlaran/hillclimb/report"
	"github.com/katalvlaran/hillclimb/stream"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve searches over HTTP and websocket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           a.newMux(args[0], g, reg),
				ReadHeaderTimeout: 10 * time.Second,
			}

			return a.listen(cmd.Context(), srv)
		},
	}
}

func (a *app) newMux(input string, g *heightmap.GridMap, reg *prometheus.Registry) *http.ServeMux {
	rec := metrics.New(reg)
	ws := stream.NewHandler(g, stream.HandlerConfig{
		Logger:    a.log,
		Metrics:   rec,
		Heuristic: a.cfg.Heuristic,
		StepDelay: a.cfg.StepDelay,
		Options:   a.cfg.SearchOptions(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/ws", ws.Handle)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/report", func(w http.ResponseWriter, r *http.Request) {
		outcomes, err := a.runQueries(r.Context(), g, rec)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		rep := report.New(input, g)
		for _, o := range outcomes {
			rep.Add(o.Query.Name, a.cfg.Heuristic, o, r.URL.Query().Has("path"))
		}
		w.Header().Set("Content-Type", "application/json")
		if err := rep.WriteJSON(w); err != nil {
			a.log.Warn("writing report", "err", err)
		}
	})

	return mux
}

// listen runs srv until ctx is cancelled, then shuts it down.
func (a *app) listen(ctx context.Context, srv *http.Server) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		a.log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down")
		return srv.Shutdown(sctx)
	})

	return eg.Wait()
}
