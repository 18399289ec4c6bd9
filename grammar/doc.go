// SPDX-License-Identifier: MIT

// Package grammar holds context-free grammars in Chomsky normal form as
// three rule families over Symbols: epsilon rules (A → ε), simple rules
// (A → x) and complex rules (A → x y).
//
// A Symbol whose label ends in IndexedSuffix is indexed: it stands for a
// family of symbols, one per block index, and its matrix is a block vector.
// The flag is fixed when the Symbol is built.
//
// Text format, one rule per non-blank line, fields separated by whitespace:
//
//	A           epsilon rule
//	A x         simple rule
//	A x y       complex rule
//	Count:
//	S           start nonterminal (the last two non-blank lines)
package grammar
