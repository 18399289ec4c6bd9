// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Boolean kernels: Mxm (product under a Semiring), EwiseAdd (union under
//     a Monoid), Minus (minuend AND NOT subtrahend) and Remap (coordinate
//     relabelling used by block layouts).
//
// Determinism & Performance:
//   - Mxm picks one of four kernels from the operand layouts, so callers
//     control cost by choosing formats:
//       ByRow×ByRow → row Gustavson, result ByRow.
//       ByCol×ByCol → column Gustavson, result ByCol.
//       ByRow×ByCol → dot product via bitmap intersection, result ByRow.
//       ByCol×ByRow → outer product, result ByRow.
//   - Operands are never mutated.

package matrix

import "github.com/RoaringBitmap/roaring/v2"

// Mxm returns a×b under semiring sr.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnknownMonoid.
func Mxm(a, b *Bool, sr Semiring) (*Bool, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf("Mxm", err)
	}
	if !sr.Valid() {
		return nil, matrixErrorf("Mxm", ErrUnknownMonoid)
	}
	mon := sr.Monoid()
	switch {
	case a.format == ByRow && b.format == ByRow:
		return mxmGustavson(a, b, a.rows, b.cols, ByRow, mon), nil
	case a.format == ByCol && b.format == ByCol:
		// (a×b) column j = ⊕ over k in b[:,j] of a[:,k]; same kernel with roles swapped.
		return mxmGustavson(b, a, a.rows, b.cols, ByCol, mon), nil
	case a.format == ByRow && b.format == ByCol:
		return mxmDot(a, b), nil
	default:
		return mxmOuter(a, b, mon), nil
	}
}

// mxmGustavson folds, for every line of outer, the lines of inner selected by
// its cross indices.
func mxmGustavson(outer, inner *Bool, rows, cols int, f Format, mon Monoid) *Bool {
	out := NewBoolFormat(rows, cols, f)
	parts := make([]*roaring.Bitmap, 0, 8)
	for line, bm := range outer.lines {
		parts = parts[:0]
		it := bm.Iterator()
		for it.HasNext() {
			if row, ok := inner.lines[int(it.Next())]; ok {
				parts = append(parts, row)
			}
		}
		if len(parts) == 0 {
			continue
		}
		acc := mon.reduce(parts...)
		if !acc.IsEmpty() {
			out.lines[line] = acc
		}
	}
	out.recount()

	return out
}

// mxmDot computes each (i, j) as "row i of a intersects column j of b".
func mxmDot(a, b *Bool) *Bool {
	out := NewBoolFormat(a.rows, b.cols, ByRow)
	for i, row := range a.lines {
		var acc *roaring.Bitmap
		for j, col := range b.lines {
			if row.Intersects(col) {
				if acc == nil {
					acc = roaring.New()
				}
				acc.Add(uint32(j))
			}
		}
		if acc != nil {
			out.lines[i] = acc
		}
	}
	out.recount()

	return out
}

// mxmOuter sums the outer products a[:,k] ⊗ b[k,:].
func mxmOuter(a, b *Bool, mon Monoid) *Bool {
	out := NewBoolFormat(a.rows, b.cols, ByRow)
	pending := make(map[int][]*roaring.Bitmap)
	for k, col := range a.lines {
		row, ok := b.lines[k]
		if !ok {
			continue
		}
		it := col.Iterator()
		for it.HasNext() {
			i := int(it.Next())
			pending[i] = append(pending[i], row)
		}
	}
	for i, parts := range pending {
		out.lines[i] = mon.reduce(parts...)
	}
	out.recount()

	return out
}

// EwiseAdd returns a ⊕ b under mon, in the layout of a.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnknownMonoid.
func EwiseAdd(a, b *Bool, mon Monoid) (*Bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("EwiseAdd", err)
	}
	out := a.Clone()
	if err := out.IAdd(b, mon); err != nil {
		return nil, matrixErrorf("EwiseAdd", err)
	}

	return out, nil
}

// Minus returns the entries of minuend that are absent from subtrahend, in
// the layout of minuend. It is the default SubOp.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Minus(minuend, subtrahend *Bool) (*Bool, error) {
	if err := ValidateSameShape(minuend, subtrahend); err != nil {
		return nil, matrixErrorf("Minus", err)
	}
	sub := subtrahend.Reformat(minuend.format)
	out := NewBoolShape(minuend)
	for k, bm := range minuend.lines {
		other, ok := sub.lines[k]
		if !ok {
			out.lines[k] = bm.Clone()
			continue
		}
		out.lines[k] = roaring.AndNot(bm, other)
	}
	out.recount()

	return out, nil
}

// Remap builds a rows×cols matrix in layout f holding fn(i, j) for every
// true (i, j) of m. fn must stay inside the new shape; coordinates that do
// not are reported as ErrOutOfRange.
//
// Complexity: O(nvals(m)).
func Remap(m *Bool, rows, cols int, f Format, fn func(i, j int) (int, int)) (*Bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Remap", err)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("Remap", ErrBadShape)
	}
	out := NewBoolFormat(rows, cols, f)
	var err error
	m.Each(func(i, j int) {
		if err != nil {
			return
		}
		ni, nj := fn(i, j)
		err = out.Set(ni, nj)
	})
	if err != nil {
		return nil, matrixErrorf("Remap", err)
	}

	return out, nil
}
