// SPDX-License-Identifier: MIT

package grammar

import "errors"

var (
	// ErrMalformedRule indicates a rule line with no field or more than three.
	ErrMalformedRule = errors.New("grammar: malformed rule")

	// ErrMissingStart indicates the "Count:" footer is absent.
	ErrMissingStart = errors.New("grammar: missing start nonterminal footer")

	// ErrAliasCycle indicates simple rules A → B whose right-hand sides are
	// nonterminals and that form a cycle.
	ErrAliasCycle = errors.New("grammar: alias cycle among simple rules")

	// ErrIndexedStart indicates an indexed start nonterminal; the answer of a
	// solve must be a single relation.
	ErrIndexedStart = errors.New("grammar: start nonterminal must not be indexed")
)
