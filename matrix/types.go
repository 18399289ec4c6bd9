// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the boolean kernels.
// This file intentionally contains ONLY the storage-layout type and the
// Bool matrix declaration; kernels live in ops.go, algebra in algebra.go.
package matrix

import "github.com/RoaringBitmap/roaring/v2"

// Format is the storage layout of a Bool: which axis is compressed into
// per-line bitmaps.
type Format uint8

const (
	// ByRow stores one bitmap of column indices per non-empty row.
	ByRow Format = iota

	// ByCol stores one bitmap of row indices per non-empty column.
	ByCol
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case ByRow:
		return "by_row"
	case ByCol:
		return "by_col"
	default:
		return "unknown"
	}
}

// Other returns the opposite layout.
func (f Format) Other() Format {
	if f == ByRow {
		return ByCol
	}

	return ByRow
}

// Bool is a sparse boolean matrix. Only true entries are stored.
//
// Invariants:
//   - lines never holds an empty bitmap (empty lines are deleted).
//   - nvals == Σ cardinality(lines[k]).
//   - every key k satisfies 0 ≤ k < (rows if ByRow else cols), every bitmap
//     value v satisfies 0 ≤ v < (cols if ByRow else rows).
//
// A Bool is not safe for concurrent mutation. Read-only sharing is fine.
type Bool struct {
	rows, cols int
	format     Format
	lines      map[int]*roaring.Bitmap // line index → bitmap of cross indices
	nvals      int
}
