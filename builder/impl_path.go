// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path, Cycle and Complete over a single label.
//
// Contract:
//   • Vertices are cfg.id(0..n-1); edges are emitted with i ascending.
//   • A label with the indexed suffix is emitted at block 0.

package builder

import "github.com/katalvlaran/cflr/lgraph"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	minPathNodes   = 2
	minCycleNodes  = 1
)

// Path builds the chain 0 → 1 → … → n-1 (n ≥ 2).
func Path(n int, label string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := validateLabel(methodPath, label, false); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			*out = append(*out, lgraph.Edge{Src: cfg.id(i), Dst: cfg.id(i + 1), Label: label})
		}

		return nil
	}
}

// Cycle builds the ring i → (i+1)%n (n ≥ 1; n == 1 is a self-loop).
func Cycle(n int, label string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := validateLabel(methodCycle, label, false); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			*out = append(*out, lgraph.Edge{Src: cfg.id(i), Dst: cfg.id((i + 1) % n), Label: label})
		}

		return nil
	}
}

// Complete builds every ordered pair (i, j), loops included. O(n²) edges.
func Complete(n int, label string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCycleNodes); err != nil {
			return err
		}
		if err := validateLabel(methodComplete, label, false); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				*out = append(*out, lgraph.Edge{Src: cfg.id(i), Dst: cfg.id(j), Label: label})
			}
		}

		return nil
	}
}
