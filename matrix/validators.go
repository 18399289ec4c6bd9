// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every given matrix is non-nil.
//
// Returns ErrNilMatrix on the first nil argument.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Bool) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Bool) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a×b is defined (a.Cols == b.Rows).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulShape(a, b *Bool) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}
