// SPDX-License-Identifier: MIT

package grammar

import (
	"fmt"
	"sort"
)

// SimpleRule is LHS → RHS.
type SimpleRule struct {
	LHS, RHS Symbol
}

// ComplexRule is LHS → Left Right.
type ComplexRule struct {
	LHS, Left, Right Symbol
}

// Template is an immutable CNF grammar. Getters return copies.
type Template struct {
	start   Symbol
	epsilon []Symbol
	simple  []SimpleRule
	complex []ComplexRule
	nonTerm map[Symbol]struct{}
}

// New validates and builds a Template.
//
// Errors:
//   - ErrIndexedStart if start is indexed.
//   - ErrAliasCycle if simple rules between nonterminals form a cycle.
func New(start Symbol, epsilon []Symbol, simple []SimpleRule, complexRules []ComplexRule) (*Template, error) {
	if start.Indexed() {
		return nil, fmt.Errorf("grammar: start %q: %w", start, ErrIndexedStart)
	}
	t := &Template{
		start:   start,
		epsilon: append([]Symbol(nil), epsilon...),
		simple:  append([]SimpleRule(nil), simple...),
		complex: append([]ComplexRule(nil), complexRules...),
		nonTerm: make(map[Symbol]struct{}),
	}
	for _, s := range t.epsilon {
		t.nonTerm[s] = struct{}{}
	}
	for _, r := range t.simple {
		t.nonTerm[r.LHS] = struct{}{}
	}
	for _, r := range t.complex {
		t.nonTerm[r.LHS] = struct{}{}
	}
	if cycle := t.aliasCycle(); cycle != nil {
		return nil, fmt.Errorf("grammar: %v: %w", cycle, ErrAliasCycle)
	}

	return t, nil
}

// Start returns the start nonterminal.
func (t *Template) Start() Symbol { return t.start }

// EpsilonRules returns the heads of A → ε rules.
func (t *Template) EpsilonRules() []Symbol { return append([]Symbol(nil), t.epsilon...) }

// SimpleRules returns the A → x rules.
func (t *Template) SimpleRules() []SimpleRule { return append([]SimpleRule(nil), t.simple...) }

// ComplexRules returns the A → x y rules.
func (t *Template) ComplexRules() []ComplexRule { return append([]ComplexRule(nil), t.complex...) }

// IsNonTerminal reports whether s heads at least one rule.
func (t *Template) IsNonTerminal(s Symbol) bool {
	_, ok := t.nonTerm[s]
	return ok
}

// NonTerminals returns every rule head, sorted by label.
func (t *Template) NonTerminals() []Symbol {
	out := make([]Symbol, 0, len(t.nonTerm))
	for s := range t.nonTerm {
		out = append(out, s)
	}

	return sortSymbols(out)
}

// Symbols returns every symbol mentioned by a rule, sorted by label.
// The start symbol is included only when some rule mentions it.
func (t *Template) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, s := range t.epsilon {
		seen[s] = struct{}{}
	}
	for _, r := range t.simple {
		seen[r.LHS], seen[r.RHS] = struct{}{}, struct{}{}
	}
	for _, r := range t.complex {
		seen[r.LHS], seen[r.Left], seen[r.Right] = struct{}{}, struct{}{}, struct{}{}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}

	return sortSymbols(out)
}

func sortSymbols(s []Symbol) []Symbol {
	sort.Slice(s, func(i, j int) bool { return s[i].label < s[j].label })
	return s
}

// Visitation states for aliasCycle.
const (
	white = iota // unvisited
	gray         // on the DFS stack
	black        // fully explored
)

// aliasCycle returns the symbols of one cycle made only of simple rules whose
// right-hand side is a nonterminal, or nil. Three-colour DFS: a gray→gray
// edge closes a cycle. A → A is a cycle of length one.
func (t *Template) aliasCycle() []Symbol {
	adj := make(map[Symbol][]Symbol)
	for _, r := range t.simple {
		if t.IsNonTerminal(r.RHS) {
			adj[r.LHS] = append(adj[r.LHS], r.RHS)
		}
	}
	state := make(map[Symbol]int, len(adj))
	var path []Symbol

	var visit func(s Symbol) []Symbol
	visit = func(s Symbol) []Symbol {
		state[s] = gray
		path = append(path, s)
		for _, next := range adj[s] {
			switch state[next] {
			case white:
				if c := visit(next); c != nil {
					return c
				}
			case gray:
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == next {
						return append(append([]Symbol(nil), path[i:]...), next)
					}
				}
			}
		}
		path = path[:len(path)-1]
		state[s] = black

		return nil
	}

	heads := make([]Symbol, 0, len(adj))
	for s := range adj {
		heads = append(heads, s)
	}
	for _, s := range sortSymbols(heads) {
		if state[s] == white {
			if c := visit(s); c != nil {
				return c
			}
		}
	}

	return nil
}
