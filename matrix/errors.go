// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (negative shapes in constructors).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf at the
// call site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> codec.

var (
	// ErrNilMatrix indicates that a nil *Bool (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (Set/FromCOO) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. EwiseAdd of different shapes, or Mxm where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownMonoid signals a zero-value Monoid/Semiring was supplied.
	ErrUnknownMonoid = errors.New("matrix: unknown monoid")

	// ErrCorruptEncoding signals that UnmarshalBinary received malformed bytes.
	ErrCorruptEncoding = errors.New("matrix: corrupt encoding")
)

// matrixErrorf wraps err with the given call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Panic messages (no magic strings).
const (
	panicNegativeShape = "matrix: NewBoolFormat: rows and cols must be >= 0"
	panicUnknownFormat = "matrix: unknown storage format"
)
