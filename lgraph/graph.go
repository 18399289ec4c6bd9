// SPDX-License-Identifier: MIT

package lgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cflr/block"
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/matrix"
)

// Edge is one labeled edge. Index selects the block of an indexed label and
// must be 0 for plain labels.
type Edge struct {
	Src, Dst int
	Label    string
	Index    int
}

// Graph maps symbols to plain matrices.
//
// Invariants:
//   - a plain symbol maps to a cell of Space.
//   - an indexed symbol maps to a block vector of Space (either orientation).
type Graph struct {
	space    block.Space
	matrices map[grammar.Symbol]*matrix.Bool
}

// New returns an empty graph over space.
func New(space block.Space) *Graph {
	return &Graph{space: space, matrices: make(map[grammar.Symbol]*matrix.Bool)}
}

// FromEdges builds a graph, inferring the vertex and block counts.
//
// Errors:
//   - ErrMalformedEdge for negative ids or indices.
//   - ErrIndexOnPlainLabel for Index > 0 on a plain label.
func FromEdges(edges []Edge) (*Graph, error) {
	n, b := 1, 1
	for _, e := range edges {
		if e.Src < 0 || e.Dst < 0 || e.Index < 0 || e.Label == "" {
			return nil, fmt.Errorf("lgraph: edge %v: %w", e, ErrMalformedEdge)
		}
		if e.Index > 0 && !grammar.NewSymbol(e.Label).Indexed() {
			return nil, fmt.Errorf("lgraph: label %q has index %d; add the %q suffix to index it: %w",
				e.Label, e.Index, grammar.IndexedSuffix, ErrIndexOnPlainLabel)
		}
		n = max(n, e.Src+1, e.Dst+1)
		b = max(b, e.Index+1)
	}
	space, err := block.NewSpace(n, b)
	if err != nil {
		return nil, fmt.Errorf("lgraph: %w", err)
	}
	g := New(space)
	for _, e := range edges {
		sym := grammar.NewSymbol(e.Label)
		m, ok := g.matrices[sym]
		if !ok {
			m = space.NewElement(sym.Indexed())
			g.matrices[sym] = m
		}
		if err = m.Set(e.Src+e.Index*n, e.Dst); err != nil {
			return nil, fmt.Errorf("lgraph: edge %v: %w", e, err)
		}
	}

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.space.N() }

// Space returns the block space of the graph.
func (g *Graph) Space() block.Space { return g.space }

// Has reports whether sym has a matrix.
func (g *Graph) Has(sym grammar.Symbol) bool {
	_, ok := g.matrices[sym]
	return ok
}

// Get returns the matrix of sym, or an empty element of the right kind.
// The result must not be mutated.
func (g *Graph) Get(sym grammar.Symbol) *matrix.Bool {
	if m, ok := g.matrices[sym]; ok {
		return m
	}

	return g.space.NewElement(sym.Indexed())
}

// Set stores m for sym after checking its shape.
func (g *Graph) Set(sym grammar.Symbol, m *matrix.Bool) error {
	if err := g.checkShape(sym, m); err != nil {
		return err
	}
	g.matrices[sym] = m

	return nil
}

func (g *Graph) checkShape(sym grammar.Symbol, m *matrix.Bool) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("lgraph: %s: %w", sym, err)
	}
	r, c := m.Shape()
	ok := g.space.IsCell(r, c)
	if sym.Indexed() && g.space.BlockCount() > 1 {
		ok = g.space.IsVector(r, c)
	}
	if !ok {
		return fmt.Errorf("lgraph: %s: %dx%d: %w", sym, r, c, ErrShape)
	}

	return nil
}

// Symbols returns the symbols that have a matrix, sorted by label.
func (g *Graph) Symbols() []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(g.matrices))
	for s := range g.matrices {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })

	return out
}

// NVals returns the total number of stored entries.
func (g *Graph) NVals() int {
	total := 0
	for _, m := range g.matrices {
		total += m.NVals()
	}

	return total
}

// Edges lists every edge, ordered by label, then index, then (src, dst).
func (g *Graph) Edges() ([]Edge, error) {
	var out []Edge
	for _, sym := range g.Symbols() {
		m := g.matrices[sym]
		if !sym.Indexed() || g.space.IsCell(m.Shape()) {
			for _, p := range m.Pairs() {
				out = append(out, Edge{Src: p[0], Dst: p[1], Label: sym.Label()})
			}
			continue
		}
		blocks, err := g.space.Blocks(m)
		if err != nil {
			return nil, fmt.Errorf("lgraph: %s: %w", sym, err)
		}
		for k, cell := range blocks {
			for _, p := range cell.Pairs() {
				out = append(out, Edge{Src: p[0], Dst: p[1], Label: sym.Label(), Index: k})
			}
		}
	}

	return out, nil
}

// Explode replaces every indexed symbol by one plain symbol per block
// (grammar.Symbol.At) and drops the block structure: the result has a single
// block.
func (g *Graph) Explode() (*Graph, error) {
	space, err := block.NewSpace(g.space.N(), 1)
	if err != nil {
		return nil, fmt.Errorf("lgraph: %w", err)
	}
	out := New(space)
	for sym, m := range g.matrices {
		if !sym.Indexed() {
			out.matrices[sym] = m
			continue
		}
		blocks, err := g.space.Blocks(m)
		if err != nil {
			return nil, fmt.Errorf("lgraph: %s: %w", sym, err)
		}
		for k, cell := range blocks {
			if !cell.IsEmpty() {
				out.matrices[sym.At(k)] = cell
			}
		}
	}

	return out, nil
}
