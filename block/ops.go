// SPDX-License-Identifier: MIT

package block

import (
	"github.com/katalvlaran/cflr/matrix"
)

// Reduce folds every block of a vector into one cell under mon. A cell is
// returned as is.
//
// Errors: ErrNotBlockShape, matrix.ErrUnknownMonoid.
func (s Space) Reduce(m *matrix.Bool, mon matrix.Monoid) (*matrix.Bool, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, blockErrorf("Reduce", err)
	}
	if s.IsCell(m.Shape()) {
		return m, nil
	}
	if !mon.Valid() {
		return nil, blockErrorf("Reduce", matrix.ErrUnknownMonoid)
	}
	o, err := s.orientationOf("Reduce", m)
	if err != nil {
		return nil, err
	}
	n := s.n

	return matrix.Remap(m, n, n, m.Format(), func(i, j int) (int, int) {
		if o == Vertical {
			return i % n, j
		}
		return i, j % n
	})
}

// Rotate re-expresses a block vector in orientation to. The input is
// returned unchanged when it already has that orientation.
//
// Errors: ErrNotBlockShape.
func (s Space) Rotate(m *matrix.Bool, to Orientation) (*matrix.Bool, error) {
	from, err := s.orientationOf("Rotate", m)
	if err != nil {
		return nil, err
	}
	if from == to {
		return m, nil
	}
	n := s.n

	return matrix.Remap(m, m.Cols(), m.Rows(), m.Format(), func(i, j int) (int, int) {
		if to == Vertical {
			return i + j/n*n, j % n
		}
		return i % n, j + i/n*n
	})
}

// ToBlockDiag expands a block vector into the (n·b) × (n·b) cell whose k-th
// diagonal block is block k.
//
// Errors: ErrNotBlockShape.
func (s Space) ToBlockDiag(m *matrix.Bool) (*matrix.Bool, error) {
	o, err := s.orientationOf("ToBlockDiag", m)
	if err != nil {
		return nil, err
	}
	n, nb := s.n, s.n*s.blockCount

	return matrix.Remap(m, nb, nb, m.Format(), func(i, j int) (int, int) {
		if o == Vertical {
			return i, j + i/n*n
		}
		return i + j/n*n, j
	})
}

// Stack builds a vertical block vector whose k-th block is cells[k].
//
// Errors: ErrBlockCount, ErrNotBlockShape (a non-cell element).
func (s Space) Stack(cells []*matrix.Bool) (*matrix.Bool, error) {
	if len(cells) != s.blockCount {
		return nil, blockErrorf("Stack", ErrBlockCount)
	}
	out := s.NewVector(Vertical)
	for k, c := range cells {
		if err := matrix.ValidateNotNil(c); err != nil {
			return nil, blockErrorf("Stack", err)
		}
		if !s.IsCell(c.Shape()) {
			return nil, blockErrorf("Stack", ErrNotBlockShape)
		}
		off := k * s.n
		var err error
		c.Each(func(i, j int) {
			if err == nil {
				err = out.Set(i+off, j)
			}
		})
		if err != nil {
			return nil, blockErrorf("Stack", err)
		}
	}

	return out, nil
}

// Repeat builds a vertical block vector holding cell in every block.
func (s Space) Repeat(cell *matrix.Bool) (*matrix.Bool, error) {
	cells := make([]*matrix.Bool, s.blockCount)
	for k := range cells {
		cells[k] = cell
	}

	return s.Stack(cells)
}

// Blocks splits a block vector into its b cells, in block order.
//
// Errors: ErrNotBlockShape.
func (s Space) Blocks(m *matrix.Bool) ([]*matrix.Bool, error) {
	o, err := s.orientationOf("Blocks", m)
	if err != nil {
		return nil, err
	}
	out := make([]*matrix.Bool, s.blockCount)
	for k := range out {
		out[k] = s.NewCell()
	}
	n := s.n
	m.Each(func(i, j int) {
		if err != nil {
			return
		}
		if o == Vertical {
			err = out[i/n].Set(i%n, j)
		} else {
			err = out[j/n].Set(i, j%n)
		}
	})
	if err != nil {
		return nil, blockErrorf("Blocks", err)
	}

	return out, nil
}
