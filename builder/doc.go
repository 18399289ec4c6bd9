// SPDX-License-Identifier: MIT

// Package builder generates labeled graphs for tests, benchmarks and the
// cflr gen command.
//
// The package offers the following key components:
//
//   - Constructor: a closure that appends labeled edges to an edge list.
//     BuildEdges / BuildGraph run constructors in order and return the
//     result as []lgraph.Edge or *lgraph.Graph.
//   - Topologies over a single label: Path (the a^n chain), Cycle, Complete,
//     RandomSparse.
//   - Fixtures for indexed symbols: Fields (store/load pairs over block
//     indices, the shape of field-sensitive alias analysis) and Balanced
//     (properly nested open/close parentheses, the Dyck shape).
//   - BuilderOption: WithSeed, WithRand, WithVertexOffset.
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed give identical edges.
//   - Constructors never panic; they return sentinel errors. Option
//     constructors panic on meaningless values.
package builder
