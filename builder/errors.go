// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadLabel indicates an empty label, or a plain label where an indexed
// one (grammar.IndexedSuffix) is required.
var ErrBadLabel = errors.New("builder: invalid label")

// ErrConstructFailed indicates a nil constructor or a failure to turn the
// generated edges into a graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
