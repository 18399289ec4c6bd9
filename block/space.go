// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/katalvlaran/cflr/matrix"
)

// Orientation is the storage direction of a block vector.
type Orientation uint8

const (
	// Vertical stacks blocks on top of each other: (n·b) × n.
	Vertical Orientation = iota

	// Horizontal places blocks side by side: n × (n·b).
	Horizontal
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}

	return "horizontal"
}

// Space is the immutable shape arithmetic for n vertices and b blocks.
// It is safe to share between goroutines.
type Space struct {
	n, blockCount int
}

// NewSpace returns the space for n vertices and blockCount blocks.
//
// Errors: ErrBadSpace if n < 0 or blockCount < 1.
func NewSpace(n, blockCount int) (Space, error) {
	if n < 0 || blockCount < 1 {
		return Space{}, blockErrorf(fmt.Sprintf("NewSpace(%d,%d)", n, blockCount), ErrBadSpace)
	}

	return Space{n: n, blockCount: blockCount}, nil
}

// N returns the vertex count.
func (s Space) N() int { return s.n }

// BlockCount returns the number of blocks.
func (s Space) BlockCount() int { return s.blockCount }

// IsCell reports whether rows × cols is the cell shape.
func (s Space) IsCell(rows, cols int) bool { return rows == s.n && cols == s.n }

// IsVector reports whether rows × cols is a block vector shape that is not
// also the cell shape.
func (s Space) IsVector(rows, cols int) bool {
	if s.IsCell(rows, cols) {
		return false
	}
	_, ok := s.Orientation(rows, cols)

	return ok
}

// Orientation classifies a block vector shape.
func (s Space) Orientation(rows, cols int) (Orientation, bool) {
	nb := s.n * s.blockCount
	switch {
	case rows == nb && cols == s.n:
		return Vertical, true
	case rows == s.n && cols == nb:
		return Horizontal, true
	default:
		return 0, false
	}
}

// VectorShape returns the block vector shape in orientation o.
func (s Space) VectorShape(o Orientation) (int, int) {
	if o == Vertical {
		return s.n * s.blockCount, s.n
	}

	return s.n, s.n * s.blockCount
}

// NewCell returns an empty cell.
func (s Space) NewCell() *matrix.Bool { return matrix.NewBool(s.n, s.n) }

// NewVector returns an empty block vector in orientation o.
func (s Space) NewVector(o Orientation) *matrix.Bool {
	r, c := s.VectorShape(o)

	return matrix.NewBool(r, c)
}

// NewElement returns an empty vertical block vector when vector is set,
// otherwise an empty cell.
func (s Space) NewElement(vector bool) *matrix.Bool {
	if vector {
		return s.NewVector(Vertical)
	}

	return s.NewCell()
}

// orientationOf classifies m or returns ErrNotBlockShape.
func (s Space) orientationOf(tag string, m *matrix.Bool) (Orientation, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, blockErrorf(tag, err)
	}
	o, ok := s.Orientation(m.Shape())
	if !ok {
		return 0, blockErrorf(fmt.Sprintf("%s(%dx%d)", tag, m.Rows(), m.Cols()), ErrNotBlockShape)
	}

	return o, nil
}
