// SPDX-License-Identifier: MIT

// Package allpairs solves all-pairs CFL-reachability.
//
// Given a graph whose edges carry terminal symbols and a grammar in
// Chomsky normal form, a solver returns the n×n relation of the grammar's
// start nonterminal: (u, v) is present iff some path from u to v spells a
// word of the start nonterminal's language.
//
// Two solvers are provided and always agree on the answer:
//
//   - Incremental (semi-naive evaluation). Each round multiplies only the
//     facts discovered in the previous round (the front) against the
//     accumulated relation, so every fact is used once.
//   - NonIncremental. Each round multiplies whole matrices until the total
//     number of facts stops growing.
//
// Both share the same setup: epsilon nonterminals are seeded with the
// identity relation and simple rules copy the current matrix of their
// right-hand side.
//
// Solving is single threaded and synchronous. The fixpoint loop checks the
// context passed to Solve once per round: a cancelled or expired context
// stops the run between rounds with ctx.Err() and no answer. A single round
// is never interrupted.
//
// Every solve emits one OpenTelemetry span and records duration, answer
// size and round count through the global meter.
package allpairs
