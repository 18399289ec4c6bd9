// SPDX-License-Identifier: MIT

// Package lgraph stores an edge-labeled graph as one boolean matrix per
// label symbol.
//
// A plain label owns an n×n cell; an indexed label (grammar.IndexedSuffix)
// owns a vertical block vector whose block k holds the edges tagged with
// index k. Graph is the plain form used for input and output; Optimized is
// the form the solvers mutate, where every matrix sits behind the
// optimized.Matrix decorators and the block policy of the Space.
//
// Text format, one edge per line:
//
//	<src> <dst> <label> [index]
//
// Vertex ids and indices are non-negative integers. The vertex count and the
// block count are one more than the largest id and index seen (at least 1).
package lgraph
