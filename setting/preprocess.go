// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
)

// PreProcessor rewrites a graph and grammar pair before solving.
type PreProcessor interface {
	Setting
	Preprocess(g *lgraph.Graph, gr *grammar.Template) (*lgraph.Graph, *grammar.Template, error)
}

// BlockMatrix keeps indexed symbols as block vectors. It is the strategy in
// effect when no other preprocessor is enabled and leaves its input as is.
type BlockMatrix struct {
	state
}

// NewBlockMatrix returns the block-vector strategy, enabled.
func NewBlockMatrix() *BlockMatrix { return &BlockMatrix{state: state{enabled: true}} }

func (b *BlockMatrix) FlagName() string { return flagFromVar("", b.VarName()) }
func (b *BlockMatrix) VarName() string  { return "optimize_block_matrix" }
func (b *BlockMatrix) Help() string     { return "Keeps indexed symbols as block matrices." }

// ApplyFlag enables the strategy.
func (b *BlockMatrix) ApplyFlag() {
	b.MarkSpecified()
	b.SetEnabled(true)
}

// Preprocess returns its input.
func (b *BlockMatrix) Preprocess(g *lgraph.Graph, gr *grammar.Template) (*lgraph.Graph, *grammar.Template, error) {
	return g, gr, nil
}

// IndexExploding unrolls indexed symbols into one plain symbol per block.
// It is disabled by default; its flag turns the block matrices off.
type IndexExploding struct {
	state
}

// NewIndexExploding returns the index-exploding strategy, disabled.
func NewIndexExploding() *IndexExploding { return &IndexExploding{} }

func (e *IndexExploding) FlagName() string { return "--disable-optimize-block-matrix" }
func (e *IndexExploding) VarName() string  { return "explode_indexes" }
func (e *IndexExploding) Help() string     { return "Turns off block matrix optimization." }

// ApplyFlag enables exploding.
func (e *IndexExploding) ApplyFlag() {
	e.MarkSpecified()
	e.SetEnabled(true)
}

// Preprocess explodes both the graph and the grammar.
func (e *IndexExploding) Preprocess(g *lgraph.Graph, gr *grammar.Template) (*lgraph.Graph, *grammar.Template, error) {
	eg, err := g.Explode()
	if err != nil {
		return nil, nil, fmt.Errorf("setting: explode graph: %w", err)
	}
	egr, err := gr.Explode(g.Space().BlockCount())
	if err != nil {
		return nil, nil, fmt.Errorf("setting: explode grammar: %w", err)
	}

	return eg, egr, nil
}

// Strategy returns the enabled preprocessor of list, or BlockMatrix when
// none is enabled. Every preprocessor of list is marked as used.
//
// Errors: ErrTooManyPreProcessors.
func Strategy(list []Setting) (PreProcessor, error) {
	var chosen PreProcessor
	for _, s := range list {
		p, ok := s.(PreProcessor)
		if !ok {
			continue
		}
		p.MarkUsed()
		if !p.Enabled() {
			continue
		}
		if chosen != nil {
			return nil, fmt.Errorf("setting: %s and %s: %w", chosen.VarName(), p.VarName(), ErrTooManyPreProcessors)
		}
		chosen = p
	}
	if chosen == nil {
		return NewBlockMatrix(), nil
	}

	return chosen, nil
}

// Preprocess applies the strategy selected by list.
func Preprocess(g *lgraph.Graph, gr *grammar.Template, list []Setting) (*lgraph.Graph, *grammar.Template, error) {
	p, err := Strategy(list)
	if err != nil {
		return nil, nil, err
	}

	return p.Preprocess(g, gr)
}
