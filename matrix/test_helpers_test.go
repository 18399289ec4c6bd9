// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the boolean kernels.
//   • Offer a naive reference product to cross-check every Mxm layout pair.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cflr/matrix"
	"github.com/stretchr/testify/require"
)

// formats enumerates both layouts for cross-layout tables.
var formats = []matrix.Format{matrix.ByRow, matrix.ByCol}

// mustCOO builds a matrix from (row, col) pairs and fails the test on error.
func mustCOO(tb testing.TB, rows, cols int, f matrix.Format, pairs ...[2]int) *matrix.Bool {
	tb.Helper()
	ri := make([]int, len(pairs))
	ci := make([]int, len(pairs))
	for k, p := range pairs {
		ri[k], ci[k] = p[0], p[1]
	}
	m, err := matrix.FromCOO(rows, cols, ri, ci)
	require.NoError(tb, err)

	return m.Reformat(f)
}

// randomBool fills a rows×cols matrix with the given density.
func randomBool(tb testing.TB, rows, cols int, density float64, seed int64) *matrix.Bool {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewBool(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(tb, m.Set(i, j))
			}
		}
	}

	return m
}

// naiveMxm is the O(n³) reference product.
func naiveMxm(tb testing.TB, a, b *matrix.Bool) *matrix.Bool {
	tb.Helper()
	out := matrix.NewBool(a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			for k := 0; k < a.Cols(); k++ {
				if a.Has(i, k) && b.Has(k, j) {
					require.NoError(tb, out.Set(i, j))
					break
				}
			}
		}
	}

	return out
}
