// Command roomgraph analyzes the inspection order of a hotel's rooms:
// a topological sort over the floor-layered precedence graph and a
// critical-path analysis over the weighted activity graph.
//
// Usage:
//
//	roomgraph analyze [--seed N] [--metrics]
//	roomgraph weights [--all]
//	roomgraph rooms
//	roomgraph shell
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
