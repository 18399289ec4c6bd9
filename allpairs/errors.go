// SPDX-License-Identifier: MIT

package allpairs

import "errors"

var (
	// ErrUnknownAlgo is returned by ByName for an unregistered name.
	ErrUnknownAlgo = errors.New("allpairs: unknown algorithm")

	// ErrNilInput indicates a nil graph or grammar.
	ErrNilInput = errors.New("allpairs: nil graph or grammar")
)

const (
	panicBadStructure = "allpairs: WithStructure requires a valid semiring and a sub-op"
)
