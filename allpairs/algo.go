// SPDX-License-Identifier: MIT

package allpairs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

// Algo is an all-pairs CFL-reachability solver.
type Algo interface {
	Name() string
	// Solve returns the relation of gr's start nonterminal over g. The
	// optimizer settings of list choose the matrix decorators; preprocessors
	// are not applied here (see the package-level Solve).
	//
	// Errors: ErrNilInput, setup errors from lgraph, and ctx.Err() when ctx
	// is done before the fixpoint is reached.
	Solve(ctx context.Context, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting, opts ...Option) (*matrix.Bool, error)
}

// Algos returns every registered solver.
func Algos() []Algo {
	return []Algo{Incremental{}, NonIncremental{}}
}

// Names returns the names of every registered solver.
func Names() []string {
	algos := Algos()
	out := make([]string, len(algos))
	for i, a := range algos {
		out[i] = a.Name()
	}

	return out
}

// ByName returns the solver called name.
func ByName(name string) (Algo, error) {
	for _, a := range Algos() {
		if a.Name() == name {
			return a, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (use one of %v)", ErrUnknownAlgo, name, Names())
}

// Solve preprocesses g and gr with the strategy selected by list and runs
// algo. A nil list means setting.Defaults().
//
// Complexity: that of the preprocessing strategy plus algo.Solve.
// Errors: ErrNilInput, preprocessing errors, and those of algo.Solve.
func Solve(ctx context.Context, algo Algo, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting, opts ...Option) (*matrix.Bool, error) {
	if g == nil || gr == nil {
		return nil, ErrNilInput
	}
	if list == nil {
		list = setting.Defaults()
	}
	pg, pgr, err := setting.Preprocess(g, gr, list)
	if err != nil {
		return nil, err
	}

	return algo.Solve(ctx, pg, pgr, list, opts...)
}

// run wraps a fixpoint loop with setup, telemetry and logging. The clock
// starts after preprocessing, so the reported duration covers setup and
// the loop only.
func run(ctx context.Context, name string, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting,
	opts []Option, loop func(*solver, context.Context) error) (*matrix.Bool, error) {
	if g == nil || gr == nil {
		return nil, ErrNilInput
	}
	if list == nil {
		list = setting.Defaults()
	}
	o := gatherOptions(opts...)
	ctx, span := startSolveSpan(ctx, name, g.VertexCount(), g.Space().BlockCount())
	defer span.End()

	began := time.Now()
	s, err := newSolver(name, g, gr, list, o)
	if err == nil {
		err = loop(s, ctx)
	}
	var answer *matrix.Bool
	if err == nil {
		answer = s.graph.Get(gr.Start()).Clone()
	}
	elapsed := time.Since(began)

	rounds, nvals := 0, 0
	if s != nil {
		rounds = s.round
	}
	if answer != nil {
		nvals = answer.NVals()
	}
	setSolveSpanResult(span, rounds, nvals, err)
	recordSolveMetrics(ctx, name, elapsed, rounds, nvals, err == nil)
	if o.onDone != nil {
		o.onDone(SolveStats{Algo: name, Rounds: rounds, NVals: nvals, Elapsed: elapsed, Err: err})
	}
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		o.log.Warn("solve stopped", "algo", name, "rounds", rounds, "reason", err)
		return nil, fmt.Errorf("allpairs: %s: stopped after %d rounds: %w", name, rounds, err)
	default:
		o.log.Error("solve failed", "algo", name, "rounds", rounds, "error", err)
		return nil, fmt.Errorf("allpairs: %s: %w", name, err)
	}
	o.log.Info("solved", "algo", name, "rounds", rounds, "nvals", nvals, "elapsed", elapsed)

	return answer, nil
}
