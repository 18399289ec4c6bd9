// SPDX-License-Identifier: MIT

// Package matrix offers the sparse boolean matrix primitive used by the
// CFL-reachability engine.
//
// The matrix package provides:
//
//   - Bool, a rows×cols boolean matrix storing one compressed bitmap per
//     non-empty line. The line axis is the storage Format (ByRow or ByCol);
//     both layouts represent the same logical matrix.
//   - Kernels over the boolean algebra: Mxm (matrix product under a
//     Semiring), EwiseAdd (union under a Monoid) and Minus (entries of the
//     minuend absent from the subtrahend, the default SubOp).
//   - Sentinel errors and centralized validators shared by every kernel.
//   - A compact binary codec (MarshalBinary / UnmarshalBinary).
//
// Memory is proportional to the number of non-empty lines plus the number
// of stored entries, so block vectors of shape (n·k)×n stay cheap even when
// most blocks are empty.
//
// See the examples in this package for usage patterns.
package matrix
