// SPDX-License-Identifier: MIT

package allpairs

import (
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

// solver holds the state of one run. It is discarded when the run ends.
type solver struct {
	name  string
	gr    *grammar.Template
	graph *lgraph.Optimized
	st    matrix.Structure
	o     options
	round int
	// aliases are the simple rules whose right-hand side is a nonterminal.
	aliases []grammar.SimpleRule
}

// newSolver builds the optimized graph and applies the shared setup:
// identity for epsilon nonterminals, then one copy per simple rule.
func newSolver(name string, g *lgraph.Graph, gr *grammar.Template, list []setting.Setting, o options) (*solver, error) {
	graph, err := lgraph.FromUnoptimized(g, setting.NewRecipe(list, o.matrixOpts...))
	if err != nil {
		return nil, err
	}
	s := &solver{name: name, gr: gr, graph: graph, st: o.structure, o: o}
	mon := s.st.Monoid()

	if eps := gr.EpsilonRules(); len(eps) > 0 {
		id := matrix.Identity(g.VertexCount())
		for _, nt := range eps {
			if err = graph.IAddBySymbol(nt, id, mon); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range gr.SimpleRules() {
		if err = graph.IAddBySymbol(r.LHS, graph.Get(r.RHS), mon); err != nil {
			return nil, err
		}
		if gr.IsNonTerminal(r.RHS) {
			s.aliases = append(s.aliases, r)
		}
	}

	return s, nil
}

// report closes a round: it logs, counts and calls the round hook.
func (s *solver) report(front int) {
	s.round++
	total := s.graph.NVals()
	s.o.log.Debug("round", "algo", s.name, "round", s.round, "nvals", total, "front", front)
	if s.o.onRound != nil {
		s.o.onRound(RoundStats{
			Algo:  s.name,
			Round: s.round,
			NVals: s.graph.NValsBySymbol(),
			Total: total,
			Front: front,
		})
	}
}
