// SPDX-License-Identifier: MIT

package optimized

import (
	"sort"

	"github.com/katalvlaran/cflr/matrix"
)

// lazyAdd defers IAdd work by keeping size-stratified buckets.
//
// Invariants:
//   - len(buckets) >= 1; buckets[0] is the current base.
//   - the logical matrix is the union of every bucket under monoid.
//   - every bucket shares the shape and layout of the first base.
type lazyAdd struct {
	buckets    []Matrix
	sizeFactor float64
	minNVals   int
	monoid     matrix.Monoid
}

// NewLazyAdd wraps base with the lazy-add accumulator.
// Recognized options: WithSizeFactor, WithMinNVals.
func NewLazyAdd(base Matrix, opts ...Option) Matrix {
	o := gatherOptions(opts...)

	return &lazyAdd{buckets: []Matrix{base}, sizeFactor: o.sizeFactor, minNVals: o.minNVals}
}

func (l *lazyAdd) base() Matrix { return l.buckets[0] }

// NVals is exact: buckets may overlap, so they are combined first.
func (l *lazyAdd) NVals() int {
	l.combine()

	return l.base().NVals()
}

func (l *lazyAdd) Shape() (int, int)             { return l.base().Shape() }
func (l *lazyAdd) Format() (matrix.Format, bool) { return l.base().Format() }

// Buckets reports how many partial matrices are currently pending.
func (l *lazyAdd) Buckets() int { return len(l.buckets) }

// ToUnoptimized combines the buckets and returns the base's matrix.
func (l *lazyAdd) ToUnoptimized() *matrix.Bool {
	l.combine()

	return l.base().ToUnoptimized()
}

// Mxm combines the buckets before multiplying.
//
// Errors: matrix.ErrUnknownMonoid, matrix.ErrDimensionMismatch.
func (l *lazyAdd) Mxm(other *matrix.Bool, sr matrix.Semiring, swap bool) (*matrix.Bool, error) {
	if err := l.useMonoid(sr.Monoid()); err != nil {
		return nil, err
	}
	if err := l.combineErr(); err != nil {
		return nil, err
	}

	return l.base().Mxm(other, sr, swap)
}

// RSub combines the buckets before subtracting.
func (l *lazyAdd) RSub(other *matrix.Bool, op matrix.SubOp) (*matrix.Bool, error) {
	if err := l.combineErr(); err != nil {
		return nil, err
	}

	return l.base().RSub(other, op)
}

// IAdd merges other with every bucket of similar size, repeatedly, and then
// keeps the result as a new bucket.
//
// Complexity: O(nnz(delta)) per merge; an entry takes part in O(log n)
// merges over the life of the matrix.
// Errors: matrix.ErrUnknownMonoid, matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch.
func (l *lazyAdd) IAdd(other *matrix.Bool, mon matrix.Monoid) error {
	if err := l.useMonoid(mon); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(other); err != nil {
		return err
	}
	delta := other
	if f, ok := l.Format(); ok {
		delta = other.Reformat(f)
	}
	if delta == other {
		delta = other.Clone()
	}

	base := l.base()
	for {
		i := l.similarBucket(delta.NVals())
		if i < 0 {
			l.buckets = append(l.buckets, base.OptimizeSimilarly(delta))
			return nil
		}
		if err := delta.IAdd(l.buckets[i].ToUnoptimized(), mon); err != nil {
			return err
		}
		l.buckets = append(l.buckets[:i], l.buckets[i+1:]...)
	}
}

// similarBucket returns the first bucket whose size lies within sizeFactor
// of n, or -1. Both sizes are floored at minNVals.
func (l *lazyAdd) similarBucket(n int) int {
	size := float64(max(n, l.minNVals))
	for i, b := range l.buckets {
		bs := float64(max(b.NVals(), l.minNVals))
		if size/l.sizeFactor <= bs && bs <= size*l.sizeFactor {
			return i
		}
	}

	return -1
}

// OptimizeSimilarly returns a fresh lazy-add over the base's similar stack.
// Pending buckets are not copied.
func (l *lazyAdd) OptimizeSimilarly(other *matrix.Bool) Matrix {
	return &lazyAdd{
		buckets:    []Matrix{l.base().OptimizeSimilarly(other)},
		sizeFactor: l.sizeFactor,
		minNVals:   l.minNVals,
	}
}

// useMonoid combines everything pending under the previous monoid before a
// different one is used.
func (l *lazyAdd) useMonoid(mon matrix.Monoid) error {
	if !mon.Valid() {
		return matrix.ErrUnknownMonoid
	}
	if l.monoid.Valid() && l.monoid.Name() == mon.Name() {
		return nil
	}
	if err := l.combineErr(); err != nil {
		return err
	}
	l.monoid = mon

	return nil
}

// combine folds every bucket into the largest one. Folding can only
// fail on a shape mismatch, which the bucket invariant rules out.
func (l *lazyAdd) combine() {
	if err := l.combineErr(); err != nil {
		panic(panicWrongShape)
	}
}

// combineErr folds the smaller buckets into the largest and leaves it as
// the only bucket. Cost is O(total entries); it fails only on a shape
// mismatch.
func (l *lazyAdd) combineErr() error {
	if len(l.buckets) == 1 {
		return nil
	}
	sort.SliceStable(l.buckets, func(a, b int) bool {
		return l.buckets[a].NVals() > l.buckets[b].NVals()
	})
	mon := l.monoid
	if !mon.Valid() {
		mon = matrix.LOr
	}
	acc := l.buckets[0]
	for _, b := range l.buckets[1:] {
		if err := acc.IAdd(b.ToUnoptimized(), mon); err != nil {
			return err
		}
	}
	l.buckets = l.buckets[:1]

	return nil
}
