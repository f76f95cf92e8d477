package astar

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/heightmap"
)

const tracerName = "github.com/katalvlaran/hillclimb/astar"

// SolveAll runs every query against g concurrently, each with its own
// search state, and returns the outcomes in query order.
//
// Search failures (ErrUnreachable, ErrExhaustedBudget, invalid options) are
// reported per query in Outcome.Err. The returned error is non-nil only when
// ctx is cancelled before all queries have started.
//
// Each query gets an OpenTelemetry span under a parent "astar.SolveAll" span;
// without a registered tracer provider these are no-ops.
func SolveAll(ctx context.Context, g *heightmap.GridMap, queries []Query) ([]Outcome, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "astar.SolveAll", trace.WithAttributes(
		attribute.Int("grid.width", g.Width),
		attribute.Int("grid.height", g.Height),
		attribute.Int("queries", len(queries)),
	))
	defer span.End()

	outcomes := make([]Outcome, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = solveTraced(ctx, tracer, g, q)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		return nil, err
	}
	span.SetStatus(codes.Ok, "")

	return outcomes, nil
}

func solveTraced(ctx context.Context, tracer trace.Tracer, g *heightmap.GridMap, q Query) Outcome {
	_, span := tracer.Start(ctx, "astar.Solve", trace.WithAttributes(
		attribute.String("query", q.Name),
		attribute.String("source", q.Source.String()),
		attribute.String("target", q.Target.String()),
	))
	defer span.End()

	start := time.Now()
	res, err := Solve(g, q.Source, q.Target, q.Heuristic, q.Options...)
	o := Outcome{Query: q, Result: res, Err: err, Elapsed: time.Since(start)}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return o
	}
	span.SetAttributes(
		attribute.Int("length", res.Length),
		attribute.Int("expanded", res.Expanded),
	)
	span.SetStatus(codes.Ok, "")

	return o
}
