// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg and runs
//     cons in order; BuildGraph converts the result with lgraph.FromEdges.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
)

// Constructor appends edges to *out using the resolved builderConfig.
type Constructor func(out *[]lgraph.Edge, cfg builderConfig) error

// BuildEdges resolves bopts and applies every constructor in order.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]lgraph.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	var edges []lgraph.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&edges, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return edges, nil
}

// BuildGraph is BuildEdges followed by lgraph.FromEdges.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*lgraph.Graph, error) {
	edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := lgraph.FromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return builderErrorf(method, "p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	return nil
}

func validateLabel(method, label string, indexed bool) error {
	if label == "" {
		return builderErrorf(method, "empty label: %w", ErrBadLabel)
	}
	if indexed && !grammar.NewSymbol(label).Indexed() {
		return builderErrorf(method, "label %q lacks the %q suffix: %w", label, grammar.IndexedSuffix, ErrBadLabel)
	}

	return nil
}
