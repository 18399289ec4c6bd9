// SPDX-License-Identifier: MIT

package lgraph

import (
	"fmt"

	"github.com/katalvlaran/cflr/block"
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
)

// Optimized maps symbols to optimized matrices. A symbol's matrix is created
// on its first IAdd, as an empty element of the right kind passed through
// recipe and the block policy of the space. Matrices are never shared
// between symbols or between graphs.
type Optimized struct {
	space    block.Space
	recipe   optimized.Recipe
	matrices map[grammar.Symbol]optimized.Matrix
}

// NewOptimized returns an empty optimized graph.
func NewOptimized(space block.Space, recipe optimized.Recipe) *Optimized {
	return &Optimized{space: space, recipe: recipe, matrices: make(map[grammar.Symbol]optimized.Matrix)}
}

// FromUnoptimized copies g into a new optimized graph.
//
// Complexity: O(nnz(g)) plus what recipe spends per matrix.
// Errors: those of IAdd.
func FromUnoptimized(g *Graph, recipe optimized.Recipe) (*Optimized, error) {
	o := NewOptimized(g.space, recipe)
	if err := o.IAdd(g, matrix.Any); err != nil {
		return nil, err
	}

	return o, nil
}

// EmptyCopy returns an empty graph with the same space and recipe.
func (o *Optimized) EmptyCopy() *Optimized {
	return NewOptimized(o.space, o.recipe)
}

// Space returns the block space.
func (o *Optimized) Space() block.Space { return o.space }

// ToUnoptimized materializes every matrix. Block vectors are reported in
// vertical orientation.
//
// Complexity: O(nnz) over all symbols; lazy buckets are combined first.
// Errors: block.ErrNotBlockShape when a vector cannot be rotated.
func (o *Optimized) ToUnoptimized() (*Graph, error) {
	g := New(o.space)
	for sym, m := range o.matrices {
		plain := m.ToUnoptimized()
		if o.space.IsVector(plain.Shape()) {
			v, err := o.space.Rotate(plain, block.Vertical)
			if err != nil {
				return nil, fmt.Errorf("lgraph: %s: %w", sym, err)
			}
			plain = v
		}
		g.matrices[sym] = plain
	}

	return g, nil
}

// NVals returns the total number of entries over every symbol.
func (o *Optimized) NVals() int {
	total := 0
	for _, m := range o.matrices {
		total += m.NVals()
	}

	return total
}

// NValsBySymbol returns the entry count of every symbol.
func (o *Optimized) NValsBySymbol() map[grammar.Symbol]int {
	out := make(map[grammar.Symbol]int, len(o.matrices))
	for sym, m := range o.matrices {
		out[sym] = m.NVals()
	}

	return out
}

// Has reports whether sym has a matrix.
func (o *Optimized) Has(sym grammar.Symbol) bool {
	_, ok := o.matrices[sym]
	return ok
}

// Get returns the plain matrix of sym, or an empty element of the right kind.
func (o *Optimized) Get(sym grammar.Symbol) *matrix.Bool {
	if m, ok := o.matrices[sym]; ok {
		return m.ToUnoptimized()
	}

	return o.space.NewElement(sym.Indexed())
}

// IAddBySymbol folds m into the matrix of sym, creating it if needed.
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrUnknownMonoid and the
// block errors, each wrapped with the symbol name.
func (o *Optimized) IAddBySymbol(sym grammar.Symbol, m *matrix.Bool, mon matrix.Monoid) error {
	om, ok := o.matrices[sym]
	if !ok {
		om = o.space.Wrap(o.recipe(o.space.NewElement(sym.Indexed())))
		o.matrices[sym] = om
	}
	if err := om.IAdd(m, mon); err != nil {
		return fmt.Errorf("lgraph: IAdd %s: %w", sym, err)
	}

	return nil
}

// IAdd folds every matrix of g into o.
func (o *Optimized) IAdd(g *Graph, mon matrix.Monoid) error {
	for _, sym := range g.Symbols() {
		if err := o.IAddBySymbol(sym, g.matrices[sym], mon); err != nil {
			return err
		}
	}

	return nil
}

// RSub returns, for every symbol of g, the entries of g that o does not hold.
// Symbols absent from o share their matrix with g.
//
// Complexity: O(nnz(g)) set differences.
func (o *Optimized) RSub(g *Graph, op matrix.SubOp) (*Graph, error) {
	out := New(o.space)
	for sym, m := range g.matrices {
		om, ok := o.matrices[sym]
		if !ok {
			out.matrices[sym] = m
			continue
		}
		d, err := om.RSub(m, op)
		if err != nil {
			return nil, fmt.Errorf("lgraph: RSub %s: %w", sym, err)
		}
		out.matrices[sym] = d
	}

	return out, nil
}

// Mxm adds, for every complex rule L → A B with A in o and B in other, the
// product o[A]×other[B] into accum[L]. With swap the roles of A and B are
// exchanged and the product is other[A]×o[B]. A nil accum starts empty.
//
// Complexity: one product per complex rule whose operands both exist.
// Errors: the first failing product or IAdd, wrapped with its rule.
func (o *Optimized) Mxm(other *Graph, gr *grammar.Template, sr matrix.Semiring, accum *Optimized, swap bool) (*Optimized, error) {
	if accum == nil {
		accum = o.EmptyCopy()
	}
	for _, r := range gr.ComplexRules() {
		mine, theirs := r.Left, r.Right
		if swap {
			mine, theirs = theirs, mine
		}
		om, ok := o.matrices[mine]
		if !ok {
			continue
		}
		tm, ok := other.matrices[theirs]
		if !ok {
			continue
		}
		p, err := om.Mxm(tm, sr, swap)
		if err != nil {
			return nil, fmt.Errorf("lgraph: Mxm %s → %s %s: %w", r.LHS, r.Left, r.Right, err)
		}
		if err = accum.IAddBySymbol(r.LHS, p, sr.Monoid()); err != nil {
			return nil, err
		}
	}

	return accum, nil
}

// RMxm is Mxm with swapped operands: other[A]×o[B].
func (o *Optimized) RMxm(other *Graph, gr *grammar.Template, sr matrix.Semiring, accum *Optimized) (*Optimized, error) {
	return o.Mxm(other, gr, sr, accum, true)
}
