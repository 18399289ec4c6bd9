// SPDX-License-Identifier: MIT

package setting

import (
	"github.com/katalvlaran/cflr/optimized"
)

// layer identifies the decorator a MatrixOptimizer contributes.
type layer uint8

const (
	layerEmpty layer = iota
	layerLazyAdd
	layerFormat
)

// MatrixOptimizer toggles one decorator layer. Its flag disables it.
type MatrixOptimizer struct {
	state
	varName string
	help    string
	layer   layer
}

// NewOptimizeEmpty returns the empty short-circuit setting.
func NewOptimizeEmpty() *MatrixOptimizer {
	return &MatrixOptimizer{state: state{enabled: true}, varName: "optimize_empty",
		help: "Turns off empty matrix optimization.", layer: layerEmpty}
}

// NewLazyAdd returns the lazy-add accumulator setting.
func NewLazyAdd() *MatrixOptimizer {
	return &MatrixOptimizer{state: state{enabled: true}, varName: "lazy_add",
		help: "Turns off lazy addition optimization.", layer: layerLazyAdd}
}

// NewOptimizeFormat returns the format optimizer setting.
func NewOptimizeFormat() *MatrixOptimizer {
	return &MatrixOptimizer{state: state{enabled: true}, varName: "optimize_format",
		help: "Turns off matrix format optimization.", layer: layerFormat}
}

func (m *MatrixOptimizer) FlagName() string { return flagFromVar("disable-", m.varName) }
func (m *MatrixOptimizer) VarName() string  { return m.varName }
func (m *MatrixOptimizer) Help() string     { return m.help }

// ApplyFlag disables the layer.
func (m *MatrixOptimizer) ApplyFlag() {
	m.MarkSpecified()
	m.SetEnabled(false)
}

// Layers collects the enabled optimizer settings of list and marks every
// optimizer setting as used.
func Layers(list []Setting) optimized.Layers {
	var ls optimized.Layers
	for _, s := range list {
		m, ok := s.(*MatrixOptimizer)
		if !ok {
			continue
		}
		m.MarkUsed()
		if !m.Enabled() {
			continue
		}
		switch m.layer {
		case layerEmpty:
			ls.Empty = true
		case layerLazyAdd:
			ls.LazyAdd = true
		case layerFormat:
			ls.Format = true
		}
	}

	return ls
}

// NewRecipe returns the wrapping recipe described by the optimizer settings
// of list.
func NewRecipe(list []Setting, opts ...optimized.Option) optimized.Recipe {
	return Layers(list).Recipe(opts...)
}
