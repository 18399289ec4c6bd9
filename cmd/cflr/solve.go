// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/cflr/allpairs"
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
	"github.com/katalvlaran/cflr/store"
)

var tracer = otel.Tracer("cflr.cmd")

type solveFlags struct {
	algo        string
	graphPath   string
	grammarPath string
	out         string
	cacheDir    string
	timeout     time.Duration
	watch       bool
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve all-pairs CFL-reachability for a graph and a grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := setting.Defaults()
			a.cfg.Apply(list)
			for _, s := range list {
				if cmd.Flags().Changed(flagName(s)) {
					s.ApplyFlag()
				}
			}
			if f.watch {
				return a.watch(cmd.Context(), f, list)
			}
			return a.solve(cmd.Context(), f, list)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.algo, "algo", "a", "", fmt.Sprintf("Algorithm, one of %v (default from config)", allpairs.Names()))
	fl.StringVarP(&f.graphPath, "graph", "g", "", "Graph file")
	fl.StringVarP(&f.grammarPath, "grammar", "G", "", "CNF grammar file")
	fl.StringVarP(&f.out, "out", "o", "", "Write answer pairs to this file")
	fl.StringVar(&f.cacheDir, "cache-dir", "", "Answer cache directory (default from config)")
	fl.DurationVar(&f.timeout, "timeout", 0, "Abandon the run after this long (default from config)")
	fl.BoolVar(&f.watch, "watch", false, "Solve again whenever the graph or grammar file changes")
	for _, s := range setting.Defaults() {
		fl.Bool(flagName(s), false, s.Help())
	}
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}

func flagName(s setting.Setting) string {
	return strings.TrimPrefix(s.FlagName(), "--")
}

// errTimeout reports an abandoned run.
var errTimeout = errors.New("time limit exceeded")

// solve runs one solve and prints its report.
func (a *app) solve(ctx context.Context, f solveFlags, list []setting.Setting) error {
	algoName := firstNonEmpty(f.algo, a.cfg.Algo)
	algo, err := allpairs.ByName(algoName)
	if err != nil {
		return err
	}
	ctx, span := tracer.Start(ctx, "cflr.solve", trace.WithAttributes(
		attribute.String("cflr.run_id", a.runID),
		attribute.String("cflr.algo", algo.Name()),
	))
	defer span.End()

	g, err := lgraph.ReadFile(f.graphPath)
	if err != nil {
		return err
	}
	gr, err := grammar.ReadFile(f.grammarPath)
	if err != nil {
		return err
	}

	cache, key, err := a.openCache(firstNonEmpty(f.cacheDir, a.cfg.Cache.Dir), algo.Name(), g, gr, list)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
		if answer, err := cache.Get(key); err == nil {
			a.log.Info("answer served from cache", "key", key)
			span.SetAttributes(attribute.Bool("cflr.cache_hit", true))
			return a.report(0, answer, f.out)
		} else if !errors.Is(err, store.ErrNotFound) {
			a.log.Warn("cache read failed", "key", key, "error", err)
		}
	}

	pg, pgr, err := setting.Preprocess(g, gr, list)
	if err != nil {
		return err
	}
	timeout := f.timeout
	if timeout == 0 {
		timeout = a.cfg.Timeout
	}
	began := time.Now()
	answer, err := a.solveWithin(ctx, timeout, algo, pg, pgr, list)
	if errors.Is(err, errTimeout) {
		a.log.Warn("run abandoned", "timeout", timeout)
		fmt.Fprintf(a.stdout, "AnalysisTime\tNaN\n#SEdges\tNaN\n")
		return nil
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(began)
	setting.ReportUnused(list, a.log)

	if cache != nil {
		if err = cache.Put(key, answer); err != nil {
			a.log.Warn("cache write failed", "key", key, "error", err)
		}
	}

	return a.report(elapsed, answer, f.out)
}

// solveWithin runs the already preprocessed inputs on their own goroutine
// and returns as soon as ctx is done. The cancelled solver stops at its next
// round boundary; until then a.running stays open.
func (a *app) solveWithin(ctx context.Context, timeout time.Duration, algo allpairs.Algo,
	g *lgraph.Graph, gr *grammar.Template, list []setting.Setting) (*matrix.Bool, error) {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	type result struct {
		answer *matrix.Bool
		err    error
	}
	done := make(chan result, 1)
	running := make(chan struct{})
	a.running = running
	go func() {
		defer close(running)
		answer, err := algo.Solve(ctx, g, gr, list,
			allpairs.WithLogger(a.log),
			allpairs.WithMatrixOptions(a.cfg.MatrixOptions()...))
		done <- result{answer, err}
	}()

	var r result
	select {
	case r = <-done:
	case <-ctx.Done():
		r.err = ctx.Err()
	}
	if errors.Is(r.err, context.DeadlineExceeded) {
		return nil, errTimeout
	}

	return r.answer, r.err
}

// waitSolver blocks until the solver goroutine of the previous run, if any,
// has returned.
func (a *app) waitSolver() {
	if a.running != nil {
		<-a.running
		a.running = nil
	}
}

func (a *app) openCache(dir, algo string, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting) (*store.Store, string, error) {
	if dir == "" {
		return nil, "", nil
	}
	key, err := store.Key(algo, g, gr, list)
	if err != nil {
		return nil, "", err
	}
	cache, err := store.Open(dir, nil)
	if err != nil {
		return nil, "", err
	}

	return cache, key, nil
}

// report prints the timing and answer size, and writes the pairs to out.
func (a *app) report(elapsed time.Duration, answer *matrix.Bool, out string) error {
	fmt.Fprintf(a.stdout, "AnalysisTime\t%g\n#SEdges\t%d\n", elapsed.Seconds(), answer.NVals())
	if out == "" {
		return nil
	}
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	for _, p := range answer.Pairs() {
		fmt.Fprintf(w, "%d\t%d\n", p[0], p[1])
	}
	if err = w.Flush(); err != nil {
		return err
	}

	return file.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
