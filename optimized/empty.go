// SPDX-License-Identifier: MIT

package optimized

import (
	"fmt"

	"github.com/katalvlaran/cflr/matrix"
)

// empty skips the wrapped layer whenever an operand has no entries.
// Every check is O(1) on top of the NVals calls it makes.
type empty struct {
	base Matrix
}

// NewEmpty wraps base with the empty-operand short-circuit.
func NewEmpty(base Matrix) Matrix {
	return &empty{base: base}
}

func (e *empty) NVals() int                    { return e.base.NVals() }
func (e *empty) Shape() (int, int)             { return e.base.Shape() }
func (e *empty) Format() (matrix.Format, bool) { return e.base.Format() }
func (e *empty) ToUnoptimized() *matrix.Bool   { return e.base.ToUnoptimized() }

// Mxm returns a fresh empty product when either side is empty. The shape
// check still runs, so a malformed call fails the same way as the kernel.
//
// Complexity: O(1) plus the allocation of the empty result when an operand
// is empty; that of the base otherwise.
// Errors: matrix.ErrDimensionMismatch.
func (e *empty) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	if e.NVals() != 0 && other.NVals() != 0 {
		return e.base.Mxm(other, sr, swap)
	}
	r, c := e.Shape()
	inner, otherInner := c, other.Rows()
	if swap {
		inner, otherInner = r, other.Cols()
	}
	if inner != otherInner {
		return nil, fmt.Errorf("optimized: empty.Mxm: %w", matrix.ErrDimensionMismatch)
	}
	rows, cols := productShape(e, other, swap)
	f, ok := e.Format()
	if !ok {
		f = matrix.ByRow
	}

	return matrix.NewBoolFormat(rows, cols, f), nil
}

// RSub returns other itself when nothing can be subtracted. The result may
// alias other, so callers must not mutate it.
func (e *empty) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	if e.NVals() == 0 || other.NVals() == 0 {
		return other, nil
	}

	return e.base.RSub(other, op)
}

// IAdd drops an empty other without touching the base.
//
// Errors: those of the base.
func (e *empty) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	if other.NVals() == 0 {
		return nil
	}

	return e.base.IAdd(other, mon)
}

// OptimizeSimilarly rewraps the base's own similar stack.
func (e *empty) OptimizeSimilarly(other *matrix.Bool) Matrix {
	return NewEmpty(e.base.OptimizeSimilarly(other))
}
