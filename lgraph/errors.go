// SPDX-License-Identifier: MIT

package lgraph

import "errors"

var (
	// ErrMalformedEdge indicates an edge line that does not follow
	// "<src> <dst> <label> [index]" with non-negative integers.
	ErrMalformedEdge = errors.New("lgraph: malformed edge")

	// ErrIndexOnPlainLabel indicates a non-zero index on a label without the
	// indexed suffix.
	ErrIndexOnPlainLabel = errors.New("lgraph: index used on a non-indexed label")

	// ErrShape indicates a matrix whose shape does not fit its symbol: plain
	// symbols need a cell, indexed symbols a block vector.
	ErrShape = errors.New("lgraph: matrix shape does not match symbol")
)
