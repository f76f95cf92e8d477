// Command hillclimb finds shortest climbing routes on elevation grids.
//
//	hillclimb FILE                 forward and reverse lengths, one per line
//	hillclimb solve FILE --json    full report
//	hillclimb view FILE            animated search in the terminal
//	hillclimb serve FILE           /metrics, /ws, /report and /healthz
//	hillclimb schema               JSON Schema of the report
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hillclimb:", err)
		os.Exit(1)
	}
}
