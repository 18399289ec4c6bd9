// SPDX-License-Identifier: MIT

package optimized

import "github.com/katalvlaran/cflr/matrix"

// adapter is the innermost layer: a thin pass-through to the kernels.
type adapter struct {
	base *matrix.Bool
}

// NewAdapter wraps base. The adapter takes ownership of base.
func NewAdapter(base *matrix.Bool) Matrix {
	return &adapter{base: base}
}

func (a *adapter) NVals() int        { return a.base.NVals() }
func (a *adapter) Shape() (int, int) { return a.base.Shape() }

// Format always reports the single layout of the base.
func (a *adapter) Format() (matrix.Format, bool) { return a.base.Format(), true }

// ToUnoptimized returns the owned base itself, not a copy.
func (a *adapter) ToUnoptimized() *matrix.Bool { return a.base }

// Mxm calls the kernel with the operands in product order.
//
// Complexity: that of matrix.Mxm.
// Errors: matrix.ErrDimensionMismatch.
func (a *adapter) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	if swap {
		return matrix.Mxm(other, a.base, sr)
	}

	return matrix.Mxm(a.base, other, sr)
}

// RSub applies op with other as the minuend.
func (a *adapter) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	return op(other, a.base)
}

// IAdd adds other into the base in place.
//
// Complexity: O(nnz(other)) bitmap unions.
// Errors: matrix.ErrDimensionMismatch, matrix.ErrUnknownMonoid.
func (a *adapter) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	return a.base.IAdd(other, mon)
}

// OptimizeSimilarly takes ownership of other.
func (a *adapter) OptimizeSimilarly(other *matrix.Bool) Matrix {
	return NewAdapter(other)
}
