// SPDX-License-Identifier: MIT

package grammar

// Explode unrolls every indexed symbol into blockCount plain symbols. A rule
// mentioning an indexed symbol becomes one rule per block index, with every
// indexed symbol of the rule replaced by its symbol at that index.
func (t *Template) Explode(blockCount int) (*Template, error) {
	var epsilon []Symbol
	for _, s := range t.epsilon {
		if !s.Indexed() {
			epsilon = append(epsilon, s)
			continue
		}
		for i := 0; i < blockCount; i++ {
			epsilon = append(epsilon, s.At(i))
		}
	}

	var simple []SimpleRule
	for _, r := range t.simple {
		if !r.LHS.Indexed() && !r.RHS.Indexed() {
			simple = append(simple, r)
			continue
		}
		for i := 0; i < blockCount; i++ {
			simple = append(simple, SimpleRule{LHS: r.LHS.At(i), RHS: r.RHS.At(i)})
		}
	}

	var complexRules []ComplexRule
	for _, r := range t.complex {
		if !r.LHS.Indexed() && !r.Left.Indexed() && !r.Right.Indexed() {
			complexRules = append(complexRules, r)
			continue
		}
		for i := 0; i < blockCount; i++ {
			complexRules = append(complexRules, ComplexRule{LHS: r.LHS.At(i), Left: r.Left.At(i), Right: r.Right.At(i)})
		}
	}

	return New(t.start, epsilon, simple, complexRules)
}
