// SPDX-License-Identifier: MIT

package block

import (
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
)

// Wrap puts the block policy on top of base, choosing by shape between a
// cell wrapper and a vector wrapper. Panics if base has neither shape.
func (s Space) Wrap(base optimized.Matrix) optimized.Matrix {
	r, c := base.Shape()
	if s.IsCell(r, c) {
		return &cellMatrix{base: base, space: s}
	}
	o, ok := s.Orientation(r, c)
	if !ok {
		panic(panicWrapShape)
	}

	return &vectorMatrix{
		base:    base,
		space:   s,
		layouts: map[Orientation]optimized.Matrix{o: base},
		discard: true,
	}
}

// cellMatrix is a cell that may be multiplied by, or receive, block vectors.
// Cell operands pass straight through to base.
type cellMatrix struct {
	base  optimized.Matrix
	space Space
}

func (m *cellMatrix) NVals() int                    { return m.base.NVals() }
func (m *cellMatrix) Shape() (int, int)             { return m.base.Shape() }
func (m *cellMatrix) Format() (matrix.Format, bool) { return m.base.Format() }
func (m *cellMatrix) ToUnoptimized() *matrix.Bool   { return m.base.ToUnoptimized() }

// Mxm rotates a vector operand so that the product is defined: Horizontal
// for cell×vector, Vertical for vector×cell.
//
// Complexity: that of the base Mxm, plus O(nnz(other)) for the rotation.
// Errors: ErrNotBlockShape, ErrBlockCount, matrix.ErrDimensionMismatch.
func (m *cellMatrix) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	if m.space.IsCell(other.Shape()) {
		return m.base.Mxm(other, sr, swap)
	}
	to := Horizontal
	if swap {
		to = Vertical
	}
	rotated, err := m.space.Rotate(other, to)
	if err != nil {
		return nil, err
	}

	return m.base.Mxm(rotated, sr, swap)
}

// RSub accepts only a cell operand and panics otherwise: a cell never holds
// the entries of a vector.
func (m *cellMatrix) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	if !m.space.IsCell(other.Shape()) {
		panic(panicCellRSub)
	}

	return m.base.RSub(other, op)
}

// IAdd folds every block of a vector operand into the cell.
//
// Complexity: O(nnz(other)) for the reduction plus the base IAdd.
// Errors: ErrNotBlockShape, matrix.ErrUnknownMonoid.
func (m *cellMatrix) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	reduced, err := m.space.Reduce(other, mon)
	if err != nil {
		return err
	}

	return m.base.IAdd(reduced, mon)
}

// OptimizeSimilarly wraps the base's similar stack, choosing the wrapper by
// the shape of other.
func (m *cellMatrix) OptimizeSimilarly(other *matrix.Bool) optimized.Matrix {
	return m.space.Wrap(m.base.OptimizeSimilarly(other))
}

// vectorMatrix is a block vector kept in one or both orientations.
//
// Invariants:
//   - layouts[o] holds the logical vector in orientation o.
//   - base is one of the values of layouts.
type vectorMatrix struct {
	base    optimized.Matrix
	space   Space
	layouts map[Orientation]optimized.Matrix
	discard bool
}

func (m *vectorMatrix) NVals() int                    { return m.base.NVals() }
func (m *vectorMatrix) Shape() (int, int)             { return m.base.Shape() }
func (m *vectorMatrix) Format() (matrix.Format, bool) { return m.base.Format() }
func (m *vectorMatrix) ToUnoptimized() *matrix.Bool   { return m.base.ToUnoptimized() }

// Orientations reports how many orientations are materialized.
func (m *vectorMatrix) Orientations() int { return len(m.layouts) }

// orientation returns the vector in orientation o, rotating on first use.
// The first rotation drops the original orientation; later ones keep both.
func (m *vectorMatrix) orientation(o Orientation) (optimized.Matrix, error) {
	if l, ok := m.layouts[o]; ok {
		m.discard = false
		return l, nil
	}
	rotated, err := m.space.Rotate(m.base.ToUnoptimized(), o)
	if err != nil {
		return nil, err
	}
	l := m.base.OptimizeSimilarly(rotated)
	m.layouts[o] = l
	if m.discard {
		if bo, ok := m.space.Orientation(m.base.Shape()); ok {
			delete(m.layouts, bo)
		}
		m.base = l
	}
	m.discard = false

	return l, nil
}

// Mxm multiplies block by block. With a cell operand each block is
// multiplied by the cell; with a vector operand block k meets block k of
// other through a block diagonal expansion.
//
// Complexity: that of the base Mxm on the chosen orientation, plus one
// O(nnz) rotation of this on first use and O(nnz(other)) for the diagonal.
// Errors: ErrNotBlockShape, ErrBlockCount, matrix.ErrDimensionMismatch.
func (m *vectorMatrix) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	if m.space.IsCell(other.Shape()) {
		o := Vertical
		if swap {
			o = Horizontal
		}
		l, err := m.orientation(o)
		if err != nil {
			return nil, err
		}
		return l.Mxm(other, sr, swap)
	}
	o := Horizontal
	if swap {
		o = Vertical
	}
	l, err := m.orientation(o)
	if err != nil {
		return nil, err
	}
	diag, err := m.space.ToBlockDiag(other)
	if err != nil {
		return nil, err
	}

	return l.Mxm(diag, sr, swap)
}

// RSub answers through the orientation of other, rotating other when that
// orientation is not materialized.
//
// Errors: ErrNotBlockShape.
func (m *vectorMatrix) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	o, err := m.space.orientationOf("vector.RSub", other)
	if err != nil {
		return nil, err
	}
	if l, ok := m.layouts[o]; ok {
		return l.RSub(other, op)
	}
	bo, _ := m.space.Orientation(m.base.Shape())
	rotated, err := m.space.Rotate(other, bo)
	if err != nil {
		return nil, err
	}

	return m.base.RSub(rotated, op)
}

// IAdd keeps every orientation current. A cell operand is added to every
// block.
//
// Complexity: O(orientations · nnz(other) · blocks) for a cell operand,
// O(orientations · nnz(other)) for a vector.
// Errors: ErrNotBlockShape, matrix.ErrUnknownMonoid.
func (m *vectorMatrix) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	var err error
	if m.space.IsCell(other.Shape()) {
		if other, err = m.space.Repeat(other); err != nil {
			return err
		}
	}
	for o, l := range m.layouts {
		rotated, err := m.space.Rotate(other, o)
		if err != nil {
			return err
		}
		if err = l.IAdd(rotated, mon); err != nil {
			return err
		}
	}

	return nil
}

// OptimizeSimilarly wraps the base's similar stack, choosing the wrapper by
// the shape of other.
func (m *vectorMatrix) OptimizeSimilarly(other *matrix.Bool) optimized.Matrix {
	return m.space.Wrap(m.base.OptimizeSimilarly(other))
}
