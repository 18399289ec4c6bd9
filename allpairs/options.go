// SPDX-License-Identifier: MIT

package allpairs

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
)

// RoundStats describes the accumulated relation after one fixpoint round.
type RoundStats struct {
	Algo  string
	Round int
	// NVals holds the entry count of every symbol of the accumulated graph.
	NVals map[grammar.Symbol]int
	Total int
	// Front is the size of the next front; always 0 for NonIncremental.
	Front int
}

// SolveStats summarizes a finished or stopped solve. Elapsed covers solver
// setup and the fixpoint loop, not preprocessing.
type SolveStats struct {
	Algo    string
	Rounds  int
	NVals   int
	Elapsed time.Duration
	// Err is nil for a completed solve.
	Err error
}

// Option configures a solve.
type Option func(*options)

type options struct {
	log        *slog.Logger
	onRound    func(RoundStats)
	onDone     func(SolveStats)
	matrixOpts []optimized.Option
	structure  matrix.Structure
}

func gatherOptions(opts ...Option) options {
	o := options{
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		structure: matrix.Boolean,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger. A nil logger keeps the default, which
// discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithOnRound installs a callback invoked after every round.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *options) { o.onRound = fn }
}

// WithOnDone installs a callback invoked once when the solve ends, with or
// without an answer.
func WithOnDone(fn func(SolveStats)) Option {
	return func(o *options) { o.onDone = fn }
}

// WithMatrixOptions forwards thresholds to the optimized matrix layers.
func WithMatrixOptions(opts ...optimized.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithStructure replaces the default matrix.Boolean algebra.
// Panics if s has an invalid semiring or no sub-op.
func WithStructure(s matrix.Structure) Option {
	if !s.Semiring.Valid() || s.Sub == nil {
		panic(panicBadStructure)
	}

	return func(o *options) { o.structure = s }
}
