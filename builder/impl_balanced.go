// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_balanced.go - Balanced: a chain spelling nested parentheses.

package builder

import "github.com/katalvlaran/cflr/lgraph"

const (
	methodBalanced = "Balanced"
	minDepth       = 1
)

// Balanced builds the 2·depth-edge chain open^depth close^depth over
// vertices 0..2·depth. Vertex i reaches vertex 2·depth-i through a
// balanced word for every i ≤ depth.
func Balanced(depth int, openLabel, closeLabel string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodBalanced, depth, minDepth); err != nil {
			return err
		}
		if err := validateLabel(methodBalanced, openLabel, false); err != nil {
			return err
		}
		if err := validateLabel(methodBalanced, closeLabel, false); err != nil {
			return err
		}
		for i := 0; i < 2*depth; i++ {
			label := openLabel
			if i >= depth {
				label = closeLabel
			}
			*out = append(*out, lgraph.Edge{Src: cfg.id(i), Dst: cfg.id(i + 1), Label: label})
		}

		return nil
	}
}
