// SPDX-License-Identifier: MIT

package allpairs

import (
	"context"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

const incrementalName = "IncrementalAllPairsCFLReachabilityMatrix"

// Incremental is the semi-naive solver. Every fact takes part in the
// products of exactly one round.
//
// Complexity: O(R · n³) per round in the worst case for R complex rules
// over n vertices; in practice proportional to the products of each front.
type Incremental struct{}

// Name implements Algo.
func (Incremental) Name() string { return incrementalName }

// Solve implements Algo. The round count is at most the number of answer
// facts plus one.
func (Incremental) Solve(ctx context.Context, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting, opts ...Option) (*matrix.Bool, error) {
	return run(ctx, incrementalName, g, gr, list, opts, (*solver).incremental)
}

// incremental starts from an empty accumulated graph whose first front is
// the whole seeded graph. Each round:
//
//	next  = M[A]×F[B]            (M before the front is folded in)
//	M    += F
//	next += F[A]×M[B]
//	next[L] += F[R] for every L → R with R a nonterminal
//	F     = next minus M
//
// and stops once the front is empty, or before a round once ctx is done.
func (s *solver) incremental(ctx context.Context) error {
	front, err := s.graph.ToUnoptimized()
	if err != nil {
		return err
	}
	s.graph = s.graph.EmptyCopy()
	sr, mon := s.st.Semiring, s.st.Monoid()

	for front.NVals() != 0 {
		if err = ctx.Err(); err != nil {
			return err
		}
		next, err := s.graph.Mxm(front, s.gr, sr, nil, false)
		if err != nil {
			return err
		}
		if err = s.graph.IAdd(front, mon); err != nil {
			return err
		}
		if next, err = s.graph.RMxm(front, s.gr, sr, next); err != nil {
			return err
		}
		for _, r := range s.aliases {
			if !front.Has(r.RHS) {
				continue
			}
			if err = next.IAddBySymbol(r.LHS, front.Get(r.RHS), mon); err != nil {
				return err
			}
		}
		produced, err := next.ToUnoptimized()
		if err != nil {
			return err
		}
		if front, err = s.graph.RSub(produced, s.st.Sub); err != nil {
			return err
		}
		s.report(front.NVals())
	}

	return nil
}
