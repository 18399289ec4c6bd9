// SPDX-License-Identifier: MIT

package grammar

import (
	"strconv"
	"strings"
)

// IndexedSuffix marks indexed symbol labels.
const IndexedSuffix = "_i"

// Symbol is an immutable grammar symbol. Two symbols built from the same
// label are equal, so Symbol is usable as a map key.
type Symbol struct {
	label   string
	indexed bool
}

// NewSymbol builds the symbol for label; it is indexed iff label ends in
// IndexedSuffix.
func NewSymbol(label string) Symbol {
	return Symbol{label: label, indexed: strings.HasSuffix(label, IndexedSuffix)}
}

// Label returns the textual name.
func (s Symbol) Label() string { return s.label }

// Indexed reports whether s stands for a per-block family.
func (s Symbol) Indexed() bool { return s.indexed }

// String implements fmt.Stringer.
func (s Symbol) String() string { return s.label }

// At returns the plain symbol for block i ("load_i" → "load_i_3").
// A plain symbol is returned unchanged.
func (s Symbol) At(i int) Symbol {
	if !s.indexed {
		return s
	}

	return NewSymbol(s.label + "_" + strconv.Itoa(i))
}
