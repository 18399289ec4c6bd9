// SPDX-License-Identifier: MIT

// Package block lets a family of per-index matrices be handled as one
// logical matrix.
//
// A Space fixes the vertex count n and the block count b and admits exactly
// two shapes:
//
//	cell            n × n
//	block vector    (n·b) × n   (Vertical: block k occupies rows k·n … k·n+n-1)
//	                n × (n·b)   (Horizontal: block k occupies columns k·n … k·n+n-1)
//
// Both vector orientations hold the same logical object; the orientation is
// recovered from the shape alone. When b == 1 the two shapes coincide and
// every matrix is treated as a cell.
//
// Products never convert both operands: a cell times a vector rotates the
// vector, a vector times a vector expands the right-hand side into a block
// diagonal cell. Wrap installs that policy on top of an optimized.Matrix.
package block
