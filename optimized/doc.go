// SPDX-License-Identifier: MIT

// Package optimized defines the Matrix interface the fixpoint solvers talk
// to, and a fixed stack of decorators that speed it up without changing what
// any operation reports.
//
// Layers, innermost first:
//
//   - NewAdapter: pass-through to a *matrix.Bool.
//   - NewEmpty: Mxm/RSub/IAdd short-circuit when either operand has no
//     entries, so long-empty nonterminals never reach the kernels.
//   - NewLazyAdd: IAdd keeps size-stratified buckets and merges a delta
//     only into a bucket of similar size; reads combine every bucket first.
//   - NewFormat: keeps the same logical matrix in up to two storage layouts
//     and multiplies through the layout that suits the operand sizes.
//
// Every layer satisfies the same contract: ToUnoptimized always reports the
// logical matrix, whatever the caches currently hold. Matrices returned by
// ToUnoptimized are read-only views; callers must not mutate them.
package optimized
