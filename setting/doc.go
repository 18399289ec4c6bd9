// SPDX-License-Identifier: MIT

// Package setting holds the user-facing switches of the solvers.
//
// Matrix optimizer settings (enabled by default) each contribute one
// decorator layer to every optimized matrix. The pipeline order is fixed,
// whatever the order of the settings list: empty short-circuit innermost,
// then lazy add, then format optimizer.
//
// Preprocessor settings choose how indexed symbols are handled: kept as
// block vectors (BlockMatrix, the default strategy) or unrolled into plain
// symbols (IndexExploding). At most one preprocessor may be enabled.
//
// Every setting exposes a flag name and help text for a command-line front
// end, and remembers whether the user specified it and whether a solver
// used it, so unused user choices can be reported.
package setting
