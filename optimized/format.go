// SPDX-License-Identifier: MIT

package optimized

import (
	"log/slog"

	"github.com/katalvlaran/cflr/matrix"
)

// format keeps one logical matrix in up to two storage layouts.
//
// Invariants:
//   - layouts[f] stores the logical matrix in layout f.
//   - base is one of the values of layouts.
type format struct {
	base      Matrix
	layouts   map[matrix.Format]Matrix
	threshold float64
	discard   bool
	opts      []Option
}

// NewFormat wraps base with the format optimizer.
// Recognized options: WithReformatThreshold, WithDiscardBaseOnReformat.
// A base that already keeps several layouts is returned unchanged.
func NewFormat(base Matrix, opts ...Option) Matrix {
	f, ok := base.Format()
	if !ok {
		slog.Debug("optimized: format optimizer applied twice, keeping the inner one")
		return base
	}
	o := gatherOptions(opts...)

	return &format{
		base:      base,
		layouts:   map[matrix.Format]Matrix{f: base},
		threshold: o.reformatThreshold,
		discard:   o.discardBaseOnReformat,
		opts:      opts,
	}
}

func (m *format) NVals() int       { return m.base.NVals() }
func (m *format) Shape() (int, int) { return m.base.Shape() }

// Format reports false: the matrix may hold both layouts at once.
func (m *format) Format() (matrix.Format, bool) { return 0, false }

func (m *format) ToUnoptimized() *matrix.Bool { return m.base.ToUnoptimized() }

// Layouts reports how many storage layouts are currently materialized.
func (m *format) Layouts() int { return len(m.layouts) }

// Mxm prefers ByRow for this when the left operand is the smaller one and
// ByCol otherwise. The switch is paid only when that layout already exists
// or other is smaller than this by more than the threshold.
//
// Complexity: that of the base Mxm, plus one O(nnz) reformat of this the
// first time a layout is materialized and of other when its layout differs.
// Errors: matrix.ErrDimensionMismatch. A decorator returning a result of
// the wrong shape panics.
func (m *format) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	left, right := m.NVals(), other.NVals()
	if swap {
		left, right = right, left
	}
	desired := matrix.ByCol
	if left < right {
		desired = matrix.ByRow
	}
	rows, cols := productShape(m, other, swap)
	if _, ok := m.layouts[desired]; ok || float64(other.NVals()) < float64(m.NVals())/m.threshold {
		out, err := m.layout(desired).Mxm(other.Reformat(desired), sr, swap)
		if err != nil {
			return nil, err
		}
		return mustSameShape(out, rows, cols), nil
	}
	out, err := m.base.Mxm(other, sr, swap)
	if err != nil {
		return nil, err
	}

	return mustSameShape(out, rows, cols), nil
}

// layout returns the matrix stored in f, materializing it on first use.
func (m *format) layout(f matrix.Format) Matrix {
	if l, ok := m.layouts[f]; ok {
		return l
	}
	cur := m.base.ToUnoptimized()
	re := cur.Reformat(f)
	if re == cur {
		re = cur.Clone()
	}
	l := m.base.OptimizeSimilarly(re)
	m.layouts[f] = l
	if m.discard {
		if bf, ok := m.base.Format(); ok {
			delete(m.layouts, bf)
		}
		m.base = l
		m.discard = false
	}

	return l
}

// RSub answers through the layout matching other when there is one.
func (m *format) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	if l, ok := m.layouts[other.Format()]; ok {
		return l.RSub(other, op)
	}

	return m.base.RSub(other, op)
}

// IAdd keeps every layout current.
//
// Complexity: O(layouts · nnz(other)).
// Errors: those of the layouts; a failure may leave them unequal.
func (m *format) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	for _, l := range m.layouts {
		if err := l.IAdd(other, mon); err != nil {
			return err
		}
	}

	return nil
}

// OptimizeSimilarly wraps the base's similar stack with the same options.
func (m *format) OptimizeSimilarly(other *matrix.Bool) Matrix {
	return NewFormat(m.base.OptimizeSimilarly(other), m.opts...)
}
