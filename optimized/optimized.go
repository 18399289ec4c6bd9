// SPDX-License-Identifier: MIT

package optimized

import "github.com/katalvlaran/cflr/matrix"

// Matrix is the operation set shared by the adapter and every decorator.
// Entries are booleans only, so there is no element type to query.
//
// Mxm returns this×other, or other×this when swap is set.
// RSub returns the entries of other that this does not hold.
// IAdd folds other into this in place; other is never retained.
// OptimizeSimilarly wraps a different base in an independent stack built
// the same way as this one.
//
// Errors: Mxm and IAdd return matrix.ErrDimensionMismatch on a shape
// mismatch, and IAdd returns matrix.ErrUnknownMonoid for a zero Monoid.
type Matrix interface {
	NVals() int
	Shape() (int, int)
	// Format reports the storage layout, or false when the matrix keeps
	// more than one layout.
	Format() (matrix.Format, bool)
	ToUnoptimized() *matrix.Bool
	Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error)
	RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error)
	IAdd(other *matrix.Bool, mon matrix.Monoid) error
	OptimizeSimilarly(other *matrix.Bool) Matrix
}

// Recipe turns a plain matrix into an optimized one.
type Recipe func(*matrix.Bool) Matrix

// mustSameShape panics when a decorator hands back a result whose shape
// differs from (rows, cols).
func mustSameShape(m *matrix.Bool, rows, cols int) *matrix.Bool {
	if m.Rows() != rows || m.Cols() != cols {
		panic(panicWrongShape)
	}

	return m
}

// productShape returns the shape of this×other (or other×this if swap).
func productShape(this Matrix, other *matrix.Bool, swap bool) (int, int) {
	r, c := this.Shape()
	if swap {
		return other.Rows(), c
	}

	return r, other.Cols()
}
