// valveflow plans valve activations in a tunnel network to maximize released
// pressure within a time budget.
//
// Usage:
//
//	valveflow solve <scenario> [--agents=2] [--minutes=N] [--plan] [--metrics]
//	valveflow compress <scenario>
//
// Scenarios are YAML, JSON or scan reports (.txt). Settings can also come
// from --config and VALVEFLOW_* environment variables.
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
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
