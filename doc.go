// SPDX-License-Identifier: MIT

// Package cflr computes all-pairs context-free language reachability.
//
// Given a graph whose edges carry labels and a grammar in Chomsky normal
// form, cflr finds every pair of vertices (u, v) connected by a path whose
// label sequence is a word of the grammar's start nonterminal. Plain graph
// reachability is the special case of a one-rule grammar; points-to and
// alias analyses are the usual customers.
//
// Everything is organized in flat subpackages:
//
//	matrix/    - sparse boolean matrices on compressed bitmaps, Mxm kernels
//	optimized/ - decorator layers: empty short-circuit, lazy add, format
//	block/     - block vectors for indexed labels (label_i with an index)
//	grammar/   - symbols and CNF grammar templates, text reader/writer
//	lgraph/    - symbol-indexed graphs, plain and optimized
//	setting/   - algo settings and preprocessing strategies
//	allpairs/  - incremental and non-incremental solvers
//	builder/   - labeled graph generators
//	config/    - YAML configuration
//	store/     - BadgerDB answer cache
//	cmd/cflr/  - command-line front end
//
// Quick start:
//
//	g, _ := lgraph.ReadFile("graph.txt")
//	gr, _ := grammar.ReadFile("grammar.cnf")
//	answer, _ := allpairs.Solve(ctx, allpairs.Incremental{}, g, gr, nil)
//	fmt.Println(answer.NVals())
package cflr
