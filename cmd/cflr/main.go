// SPDX-License-Identifier: MIT

// Command cflr solves all-pairs CFL-reachability from the command line.
//
//	cflr solve -g graph.txt -G grammar.cnf [--disable-lazy-add ...]
//	cflr check -g graph.txt -G grammar.cnf
//	cflr gen fields -n 100 -m 400 --fields 8
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
	a := newApp(os.Stdout, os.Stderr)
	err := a.root().ExecuteContext(ctx)
	a.close(context.Background())
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cflr:", err)
		os.Exit(1)
	}
}
