// SPDX-License-Identifier: MIT

package allpairs

import (
	"context"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

const nonIncrementalName = "NonIncrementalAllPairsCFLReachabilityMatrix"

// NonIncremental re-multiplies whole matrices every round. It serves as a
// cross-check for Incremental.
//
// Complexity: O(R · n³) per round for R complex rules over n vertices.
type NonIncremental struct{}

// Name implements Algo.
func (NonIncremental) Name() string { return nonIncrementalName }

// Solve implements Algo.
func (NonIncremental) Solve(ctx context.Context, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting, opts ...Option) (*matrix.Bool, error) {
	return run(ctx, nonIncrementalName, g, gr, list, opts, (*solver).nonIncremental)
}

// nonIncremental re-applies alias rules, then folds M[A]×M[B] into M[L]
// for every complex rule, until the total entry count stops changing or ctx
// is done.
func (s *solver) nonIncremental(ctx context.Context) error {
	sr, mon := s.st.Semiring, s.st.Monoid()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		old := s.graph.NVals()
		for _, r := range s.aliases {
			if err := s.graph.IAddBySymbol(r.LHS, s.graph.Get(r.RHS), mon); err != nil {
				return err
			}
		}
		snapshot, err := s.graph.ToUnoptimized()
		if err != nil {
			return err
		}
		if _, err = s.graph.Mxm(snapshot, s.gr, sr, s.graph, false); err != nil {
			return err
		}
		s.report(0)
		if s.graph.NVals() == old {
			return nil
		}
	}
}
