// Package main implements freqcheck, a command-line checker for aviation VHF
// frequencies.
//
// Usage:
//
//	freqcheck validate 120.905 121.500
//	echo 132.830 | freqcheck validate --json
//	freqcheck sort 136.975 118.005 121.500
//	freqcheck format --frequency 120.905
//
// Exit codes:
//   - 0: every input was accepted
//   - 1: at least one input was rejected, or a usage/config error occurred
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "freqcheck: %v\n", err)
		stop()
		os.Exit(1)
	}
}
