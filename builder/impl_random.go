// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - stochastic constructors.
//
// Determinism:
//   • Stable trial order: i ascending, then j ascending.
//   • cfg.rng is required unless the outcome does not depend on it.

package builder

import "github.com/katalvlaran/cflr/lgraph"

const (
	methodRandomSparse = "RandomSparse"
	methodFields       = "Fields"
	minRandomVertices  = 1
	minFields          = 1
)

// RandomSparse includes each ordered pair (i, j), loops included, with
// probability p, labelled by one of labels drawn uniformly.
func RandomSparse(n int, p float64, labels ...string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if len(labels) == 0 {
			return builderErrorf(methodRandomSparse, "no labels: %w", ErrBadLabel)
		}
		for _, l := range labels {
			if err := validateLabel(methodRandomSparse, l, false); err != nil {
				return err
			}
		}
		if cfg.rng == nil && (p > 0 || len(labels) > 1) {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				l := labels[0]
				if len(labels) > 1 {
					l = labels[cfg.rng.Intn(len(labels))]
				}
				*out = append(*out, lgraph.Edge{Src: cfg.id(i), Dst: cfg.id(j), Label: l})
			}
		}

		return nil
	}
}

// Fields draws m edges over n vertices: each is a store or a load edge at a
// block index drawn from [0, fields). store and load must carry the
// indexed suffix.
func Fields(n, m, fields int, store, load string) Constructor {
	return func(out *[]lgraph.Edge, cfg builderConfig) error {
		if err := validateMin(methodFields, n, minRandomVertices); err != nil {
			return err
		}
		if err := validateMin(methodFields, fields, minFields); err != nil {
			return err
		}
		if m < 0 {
			return builderErrorf(methodFields, "m=%d: %w", m, ErrTooFewVertices)
		}
		if err := validateLabel(methodFields, store, true); err != nil {
			return err
		}
		if err := validateLabel(methodFields, load, true); err != nil {
			return err
		}
		if cfg.rng == nil && m > 0 {
			return builderErrorf(methodFields, "%w", ErrNeedRandSource)
		}
		for k := 0; k < m; k++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			label := store
			if cfg.rng.Intn(2) == 1 {
				label = load
			}
			*out = append(*out, lgraph.Edge{Src: cfg.id(u), Dst: cfg.id(v), Label: label, Index: cfg.rng.Intn(fields)})
		}

		return nil
	}
}
